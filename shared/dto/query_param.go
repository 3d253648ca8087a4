package dto

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams controls ordering and limiting at the store layer. The HTTP
// surface deliberately exposes none of it: list endpoints return the full
// result set ordered by creation time.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}
