package blog

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateBlogRequest - POST /blogs
type CreateBlogRequest struct {
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	AuthorID    string   `json:"authorId"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Subcategory []string `json:"subcategory"`
	IsPublished bool     `json:"isPublished"`
}

func (r CreateBlogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("blog title is required"),
			validation.By(notBlank("blog title")),
		),
		validation.Field(&r.Body,
			validation.Required.Error("blog body is required"),
			validation.By(notBlank("blog body")),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("author id is required"),
			validation.By(objectIDHex),
		),
		validation.Field(&r.Category,
			validation.Required.Error("blog category is required"),
			validation.By(notBlank("blog category")),
		),
	)
}

// UpdateBlogRequest - PUT /blogs/:blogId
// Pointer fields distinguish "absent" from "present but empty".
type UpdateBlogRequest struct {
	Title       *string  `json:"title"`
	Body        *string  `json:"body"`
	Tags        []string `json:"tags"`
	Subcategory []string `json:"subcategory"`
	IsPublished *bool    `json:"isPublished"`
}

// IsEmpty reports whether none of the updatable content fields were
// supplied. A lone isPublished flip does not count, matching the original
// contract.
func (r UpdateBlogRequest) IsEmpty() bool {
	return r.Title == nil && r.Body == nil && r.Tags == nil && r.Subcategory == nil
}

func (r UpdateBlogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil, validation.By(notBlankPtr("blog title"))),
		),
		validation.Field(&r.Body,
			validation.When(r.Body != nil, validation.By(notBlankPtr("blog body"))),
		),
		validation.Field(&r.Tags,
			validation.When(r.Tags != nil, validation.By(hasValues("tags"))),
		),
		validation.Field(&r.Subcategory,
			validation.When(r.Subcategory != nil, validation.By(hasValues("subcategory"))),
		),
	)
}

// ListQuery - GET /filterblogs query parameters. A nil field means the
// parameter was not supplied at all; a supplied-but-invalid value is a
// validation error, never silently ignored.
type ListQuery struct {
	AuthorID    *string
	Category    *string
	Tags        *string
	Subcategory *string
}

func (q ListQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.AuthorID,
			validation.When(q.AuthorID != nil, validation.By(objectIDHexPtr)),
		),
		validation.Field(&q.Category,
			validation.When(q.Category != nil, validation.By(notBlankPtr("category"))),
		),
		validation.Field(&q.Tags,
			validation.When(q.Tags != nil, validation.By(csvHasValues("tags"))),
		),
		validation.Field(&q.Subcategory,
			validation.When(q.Subcategory != nil, validation.By(csvHasValues("subcategory"))),
		),
	)
}

// DeleteFilterQuery - DELETE /blogs query parameters.
type DeleteFilterQuery struct {
	AuthorID    *string
	Category    *string
	Tags        *string
	Subcategory *string
	IsPublished *bool
}

// IsEmpty reports whether no filter was supplied at all.
func (q DeleteFilterQuery) IsEmpty() bool {
	return q.AuthorID == nil && q.Category == nil && q.Tags == nil &&
		q.Subcategory == nil && q.IsPublished == nil
}

func (q DeleteFilterQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.AuthorID,
			validation.When(q.AuthorID != nil, validation.By(objectIDHexPtr)),
		),
		validation.Field(&q.Category,
			validation.When(q.Category != nil, validation.By(notBlankPtr("category"))),
		),
		validation.Field(&q.Tags,
			validation.When(q.Tags != nil, validation.By(csvHasValues("tags"))),
		),
		validation.Field(&q.Subcategory,
			validation.When(q.Subcategory != nil, validation.By(csvHasValues("subcategory"))),
		),
	)
}

// ---------------------------------------------------------------------
// validation rules
// ---------------------------------------------------------------------

func notBlank(name string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return validation.NewError("validation_blank", name+" cannot be blank")
		}
		return nil
	}
}

func notBlankPtr(name string) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(*string)
		if !ok || s == nil {
			return nil
		}
		return notBlank(name)(*s)
	}
}

func hasValues(name string) validation.RuleFunc {
	return func(value interface{}) error {
		list, _ := value.([]string)
		if len(SplitAndTrim(strings.Join(list, ","))) == 0 {
			return validation.NewError("validation_empty_list", name+" must contain at least one value")
		}
		return nil
	}
}

func csvHasValues(name string) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(*string)
		if !ok || s == nil {
			return nil
		}
		if len(SplitAndTrim(*s)) == 0 {
			return validation.NewError("validation_empty_list", name+" must contain at least one value")
		}
		return nil
	}
}

func objectIDHex(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil // Required covers absence
	}
	if _, err := primitive.ObjectIDFromHex(s); err != nil {
		return validation.NewError("validation_object_id", "is not a valid id")
	}
	return nil
}

func objectIDHexPtr(value interface{}) error {
	s, ok := value.(*string)
	if !ok || s == nil {
		return nil
	}
	if _, err := primitive.ObjectIDFromHex(strings.TrimSpace(*s)); err != nil {
		return validation.NewError("validation_object_id", "is not a valid id")
	}
	return nil
}

// ---------------------------------------------------------------------
// list normalization
// ---------------------------------------------------------------------

// SplitAndTrim turns a comma-separated parameter into a clean value list:
// values are trimmed, blanks dropped, duplicates removed.
func SplitAndTrim(s string) []string {
	return Dedupe(strings.Split(s, ","))
}

// Dedupe trims every entry, drops blanks and keeps the first occurrence
// of each value, preserving order.
func Dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
