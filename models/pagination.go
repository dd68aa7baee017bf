package models

// Page is one page of a filtered listing.
type Page[T any] struct {
	Data        []T   `json:"data"`
	Count       int64 `json:"count"`
	Pages       int   `json:"pages"`
	CurrentPage int   `json:"currentPage"`
}
