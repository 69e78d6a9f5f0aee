// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PostsPageSize is the fixed number of posts shown on one listing page.
const PostsPageSize = 5

// Post is a single blog entry.
type Post struct {
	// ID is assigned by the store on creation.
	ID int64 `json:"id"`

	Title   string `json:"title"`
	Content string `json:"content"`

	// CreatedAt is set once when the post is created and never updated.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostInput holds the editable fields of a post as submitted by a form.
type PostInput struct {
	Title   string
	Content string
}

// PostQuery describes one page of the post listing.
type PostQuery struct {
	// Search, when non-empty, restricts the listing to posts whose title
	// or content contains the term.
	Search string

	// Page is 1-indexed. Values below 1 are treated as 1.
	Page int
}

// NormalizedPage returns Page clamped to a minimum of 1.
func (q PostQuery) NormalizedPage() int {
	if q.Page < 1 {
		return 1
	}
	return q.Page
}

// Offset returns the number of rows skipped before the requested page.
func (q PostQuery) Offset() int {
	return (q.NormalizedPage() - 1) * PostsPageSize
}

// PostPage is one page of the post listing together with the
// total number of matching posts.
type PostPage struct {
	Items      []Post
	TotalCount int64
	Page       int
	PageSize   int
	Search     string
}

// TotalPages returns ceil(TotalCount / PageSize).
func (p PostPage) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return int((p.TotalCount + int64(p.PageSize) - 1) / int64(p.PageSize))
}

// HasPrev reports whether a previous page exists.
func (p PostPage) HasPrev() bool {
	return p.Page > 1
}

// HasNext reports whether a following page exists.
func (p PostPage) HasNext() bool {
	return p.Page < p.TotalPages()
}
