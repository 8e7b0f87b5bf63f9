// ABOUTME: Domain model for structured content blocks
// ABOUTME: Defines the tagged block variants of the ordered content model

package domain

// BlockType identifies the variant of a structured content block.
type BlockType string

const (
	BlockHeading   BlockType = "heading"
	BlockParagraph BlockType = "paragraph"
	BlockList      BlockType = "list"
	BlockImage     BlockType = "image"
	BlockCode      BlockType = "code"
	BlockQuote     BlockType = "quote"
	BlockTable     BlockType = "table"
	BlockDivider   BlockType = "divider"
)

// Block is one semantic unit of the ordered content model. Only the
// fields relevant to the block's Type are populated. Blocks are built
// once per extraction and never mutated afterwards; their order matches
// document order.
type Block struct {
	Type BlockType `json:"type"`

	// Heading fields
	Level int `json:"level,omitempty"`

	// Text is the collapsed plain text for heading, paragraph and quote blocks.
	Text string `json:"text,omitempty"`

	// HTML carries inline markup for paragraphs and the full markup for tables.
	HTML string `json:"html,omitempty"`

	// List fields
	Items []string `json:"items,omitempty"`

	// Image fields
	Src     string `json:"src,omitempty"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`

	// Code fields
	Code     string `json:"code,omitempty"`
	Language string `json:"language,omitempty"`
}
