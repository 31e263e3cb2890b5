package view

import (
	"image"
	"unicode/utf8"
)

// InputField is a single line text input. It learns about focus from
// Focus events and edits its text from Key events while focused.
type InputField struct {
	Base
	text        string
	cursor      int // byte offset into text
	focused     bool
	Placeholder string
}

// NewInputField returns an empty input tagged tag.
func NewInputField(r image.Rectangle, tag Tag, placeholder string) *InputField {
	return &InputField{Base: NewBase(tag, r), Placeholder: placeholder}
}

func (in *InputField) Text() string  { return in.text }
func (in *InputField) Focused() bool { return in.focused }

// SetText replaces the text and moves the cursor to its end.
func (in *InputField) SetText(text string, rq *RenderQueue) {
	if text == in.text {
		return
	}
	in.text = text
	in.cursor = len(text)
	rq.Add(NewRequest(in.ID(), in.Rect(), GUI))
}

func (in *InputField) setFocused(focused bool, rq *RenderQueue) {
	if focused == in.focused {
		return
	}
	in.focused = focused
	rq.Add(NewRequest(in.ID(), in.Rect(), GUI))
}

func (in *InputField) HandleEvent(evt Event, hub *Hub, rq *RenderQueue, ctx *Context) bool {
	switch e := evt.(type) {
	case Focus:
		in.setFocused(e.Target == in.Tag(), rq)
		// The container tracks focus too.
		return false
	case Key:
		if !in.focused {
			return false
		}
		in.key(e, hub, rq)
		return true
	case SubmitInput:
		if e.Tag != in.Tag() {
			return false
		}
		hub.Send(Submit{Tag: in.Tag(), Text: in.text})
		return true
	case SetInputText:
		if e.Tag != in.Tag() {
			return false
		}
		in.SetText(e.Text, rq)
		return true
	case Hold:
		if !e.Point.In(in.Rect()) {
			return false
		}
		hub.Send(ToggleInputHistory{Input: in.Tag(), Rect: in.Rect()})
		return true
	case Tap:
		if !e.Point.In(in.Rect()) {
			return false
		}
		if !in.focused {
			hub.Send(Focus{Target: in.Tag()})
		}
		return true
	}
	return false
}

func (in *InputField) key(k Key, hub *Hub, rq *RenderQueue) {
	switch k.Kind {
	case KeyChar:
		in.text = in.text[:in.cursor] + k.Text + in.text[in.cursor:]
		in.cursor += len(k.Text)
	case KeyBackspace:
		if in.cursor == 0 {
			return
		}
		_, n := utf8.DecodeLastRuneInString(in.text[:in.cursor])
		in.text = in.text[:in.cursor-n] + in.text[in.cursor:]
		in.cursor -= n
	case KeyLeft:
		if in.cursor == 0 {
			return
		}
		_, n := utf8.DecodeLastRuneInString(in.text[:in.cursor])
		in.cursor -= n
	case KeyRight:
		if in.cursor == len(in.text) {
			return
		}
		_, n := utf8.DecodeRuneInString(in.text[in.cursor:])
		in.cursor += n
	case KeyReturn:
		hub.Send(Submit{Tag: in.Tag(), Text: in.text})
		return
	}
	rq.Add(NewRequest(in.ID(), in.Rect(), Fast))
}

func (in *InputField) Render(c *Canvas, rect image.Rectangle) {
	c.Fill(rect, c.Ink(InkBackground))
	box := padded(in.Rect())
	if in.text == "" && !in.focused {
		c.Text(box, in.Placeholder, c.Ink(InkMuted), AlignLeft)
		return
	}
	c.Text(box, in.text, c.Ink(InkText), AlignLeft)
	if !in.focused || c.Font == nil {
		return
	}
	x := min(box.Min.X+c.Font.StringWidth(in.text[:in.cursor]), box.Max.X-1)
	h := c.Font.Height()
	y := box.Min.Y + (box.Dy()-h)/2
	c.Fill(image.Rect(x, y, x+1, y+h).Intersect(rect), c.Ink(InkText))
}
