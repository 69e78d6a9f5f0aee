package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/models"
)

const (
	usersTable = "users"
	postsTable = "posts"
)

var (
	userColumns = []string{"id", "username", "password_hash", "role"}
	postColumns = []string{"id", "title", "content", "created_at"}
)

func buildInsertUserQuery(sb sq.StatementBuilderType, user models.User) (string, []any, error) {
	return sb.Insert(usersTable).
		Columns("username", "password_hash", "role").
		Values(user.Username, user.PasswordHash, string(user.Role)).
		Suffix("RETURNING id").
		ToSql()
}

func buildFindUserQuery(sb sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return sb.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func buildUpdateUserRoleQuery(sb sq.StatementBuilderType, userID int64, role models.Role) (string, []any, error) {
	return sb.Update(usersTable).
		Set("role", string(role)).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildListUsersQuery(sb sq.StatementBuilderType) (string, []any, error) {
	return sb.Select(userColumns...).
		From(usersTable).
		OrderBy("username ASC").
		ToSql()
}

func buildCountUsersByRoleQuery(sb sq.StatementBuilderType) (string, []any, error) {
	return sb.Select("role", "COUNT(*)").
		From(usersTable).
		GroupBy("role").
		ToSql()
}

func buildInsertPostQuery(sb sq.StatementBuilderType, post models.Post) (string, []any, error) {
	return sb.Insert(postsTable).
		Columns("title", "content", "created_at").
		Values(post.Title, post.Content, post.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildGetPostQuery(sb sq.StatementBuilderType, postID int64) (string, []any, error) {
	return sb.Select(postColumns...).
		From(postsTable).
		Where(sq.Eq{"id": postID}).
		ToSql()
}

func buildUpdatePostQuery(sb sq.StatementBuilderType, post models.Post) (string, []any, error) {
	return sb.Update(postsTable).
		Set("title", post.Title).
		Set("content", post.Content).
		Where(sq.Eq{"id": post.ID}).
		Suffix("RETURNING " + strings.Join(postColumns, ", ")).
		ToSql()
}

func buildDeletePostQuery(sb sq.StatementBuilderType, postID int64) (string, []any, error) {
	return sb.Delete(postsTable).
		Where(sq.Eq{"id": postID}).
		ToSql()
}

// buildListPostsQuery selects one page of posts, newest first. The search
// predicate is only attached when a term is given.
func buildListPostsQuery(sb sq.StatementBuilderType, dialect string, query models.PostQuery) (string, []any, error) {
	builder := sb.Select(postColumns...).
		From(postsTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(models.PostsPageSize)).
		Offset(uint64(query.Offset()))

	if pred := searchPredicate(dialect, query.Search); pred != nil {
		builder = builder.Where(pred)
	}

	return builder.ToSql()
}

func buildCountPostsQuery(sb sq.StatementBuilderType, dialect, search string) (string, []any, error) {
	builder := sb.Select("COUNT(*)").From(postsTable)

	if pred := searchPredicate(dialect, search); pred != nil {
		builder = builder.Where(pred)
	}

	return builder.ToSql()
}

// searchPredicate matches the term anywhere in title or content,
// case-insensitively. It returns nil for an empty term.
func searchPredicate(dialect, search string) sq.Sqlizer {
	if search == "" {
		return nil
	}

	op := "LIKE"
	if dialect == config.DialectPostgres {
		op = "ILIKE"
	}

	pattern := "%" + escapeLike(search) + "%"
	return sq.Or{
		sq.Expr(fmt.Sprintf(`title %s ? ESCAPE '\'`, op), pattern),
		sq.Expr(fmt.Sprintf(`content %s ? ESCAPE '\'`, op), pattern),
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralises LIKE wildcards so the term is matched literally.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
