// ABOUTME: Domain models for extracted article records
// ABOUTME: Defines the pipeline output shape returned to the host

package domain

// Quality is the heuristic 0-100 rating of extraction completeness
// and cleanliness produced by the quality assessor.
type Quality struct {
	Score     int      `json:"score"`
	WordCount int      `json:"wordCount"`
	HasImages bool     `json:"hasImages"`
	HasCode   bool     `json:"hasCode"`
	Warnings  []string `json:"warnings,omitempty"`
}

// ArticleRecord is the final output of the extraction pipeline.
//
// ContentHTML is sanitized markup with absolute URLs; it is only empty
// when extraction failed completely. PublishedAt is either a valid
// YYYY-MM-DD string or empty, never a partial date.
type ArticleRecord struct {
	Title             string  `json:"title"`
	ContentHTML       string  `json:"contentHtml"`
	ContentMarkdown   string  `json:"contentMarkdown"`
	StructuredContent []Block `json:"structuredContent"`
	SourceURL         string  `json:"sourceUrl"`
	TopImage          string  `json:"topImage,omitempty"`
	Author            string  `json:"author,omitempty"`
	PublishedAt       string  `json:"publishedAt,omitempty"`
	SourceDomain      string  `json:"sourceDomain"`
	Excerpt           string  `json:"excerpt,omitempty"`
	IsSelectionOnly   bool    `json:"isSelectionOnly"`
	Quality           Quality `json:"quality"`
}
