package surface

import "strings"

// SpanStyle marks how a run of text should be presented.
type SpanStyle int

const (
	StylePlain SpanStyle = iota
	StyleDistance
)

// Span is a styled run of text within a line.
type Span struct {
	Style SpanStyle
	Text  string
}

// Text is one secondary line of a row, made of spans.
type Text []Span

// PlainText returns a single unstyled span line.
func PlainText(s string) Text {
	return Text{{Style: StylePlain, Text: s}}
}

// DistanceText returns a line starting with a distance-styled span.
func DistanceText(distance string) Text {
	return Text{{Style: StyleDistance, Text: distance}}
}

// Append returns t with an additional plain span.
func (t Text) Append(s string) Text {
	return append(t, Span{Style: StylePlain, Text: s})
}

// String concatenates the span texts.
func (t Text) String() string {
	var b strings.Builder
	for _, span := range t {
		b.WriteString(span.Text)
	}
	return b.String()
}

// HasStyle reports whether any span uses style.
func (t Text) HasStyle(style SpanStyle) bool {
	for _, span := range t {
		if span.Style == style {
			return true
		}
	}
	return false
}

// IconStyle are the rasterisation parameters for row images.
type IconStyle struct {
	CircleSize int // cells
	Bold       bool
}

// Image is an already rendered row image. Alt is its plain text form.
type Image struct {
	Rendered string
	Alt      string
}

// ActionKind is what a row click does.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionOpenCollection
	ActionFocusBookmark
)

// Action describes the target of a row click.
type Action struct {
	Kind         ActionKind
	CollectionID string
	BookmarkID   string
}

// HeaderAction is the action shown at the start of the header.
type HeaderAction int

const (
	HeaderNone HeaderAction = iota
	HeaderBack
)

// Row is one list item.
type Row struct {
	Title     string
	Texts     []Text
	Image     *Image
	Browsable bool
	Action    Action
	OnClick   func()
}

// NewRowParams holds parameters for creating a Row.
type NewRowParams struct {
	Title     string
	Texts     []Text
	Image     *Image
	Browsable bool
	Action    Action
	OnClick   func()
}

// NewRow creates a Row. Texts is never nil.
func NewRow(params NewRowParams) Row {
	texts := params.Texts
	if texts == nil {
		texts = []Text{}
	}
	return Row{
		Title:     params.Title,
		Texts:     texts,
		Image:     params.Image,
		Browsable: params.Browsable,
		Action:    params.Action,
		OnClick:   params.OnClick,
	}
}

// Click runs the row's click handler if it has one.
func (r Row) Click() {
	if r.OnClick != nil {
		r.OnClick()
	}
}

// Header is the title bar of a template.
type Header struct {
	Title       string
	StartAction HeaderAction
}

// NewHeader creates a Header with a back action.
func NewHeader(title string) Header {
	return Header{Title: title, StartAction: HeaderBack}
}

// ItemList is the ordered list of rows.
type ItemList struct {
	Rows []Row
}

// Len returns the number of rows.
func (l ItemList) Len() int {
	return len(l.Rows)
}

// Template is what a screen renders.
type Template struct {
	Header Header
	List   ItemList
}

// Renderer turns a Template into a platform representation.
type Renderer interface {
	Render(t Template) string
}
