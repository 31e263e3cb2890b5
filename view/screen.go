package view

// WantFor maps the overlay control events to the outcome they ask for.
func WantFor(evt Event) (Tag, Want, bool) {
	switch e := evt.(type) {
	case Toggle:
		return e.Tag, Flip, true
	case Open:
		return e.Tag, ForceOpen, true
	case Close:
		return e.Tag, ForceClose, true
	}
	return NoTag, Flip, false
}

// HandleScreen handles the events every screen treats alike: menus,
// notifications, focus and the keyboard. Screens call it for the events
// they do not handle themselves.
func HandleScreen(p Parent, ov *Overlay, evt Event, hub *Hub, rq *RenderQueue, ctx *Context) bool {
	if e, ok := evt.(Close); ok && e.ID != 0 {
		CloseFloatingID(p, e.ID, rq)
		return true
	}
	if tag, want, ok := WantFor(evt); ok {
		switch {
		case tag == TagSearchBar:
			ov.ToggleSearch(want, true, hub, rq, ctx)
		case tag == TagKeyboard:
			ov.ToggleKeyboard(want, true, ov.Focus(), hub, rq, ctx)
		case want == ForceClose && (tag.IsMenu() || tag.IsNotification()):
			CloseFloating(p, tag, rq)
		default:
			return false
		}
		return true
	}
	switch e := evt.(type) {
	case Focus:
		ov.SetFocus(e.Target, hub, rq, ctx)
		return true
	case ToggleNear:
		switch e.Tag {
		case TagMainMenu:
			ToggleMainMenu(p, e.Rect, Flip, rq, ctx)
		case TagBatteryMenu:
			ToggleBatteryMenu(p, e.Rect, Flip, rq, ctx)
		case TagClockMenu:
			ToggleClockMenu(p, e.Rect, Flip, rq, ctx)
		case TagKeyboardLayoutMenu:
			ToggleKeyboardLayoutMenu(p, e.Rect, Flip, rq, ctx)
		default:
			return false
		}
		return true
	case ToggleInputHistory:
		ToggleInputHistoryMenu(p, e.Input, e.Rect, Flip, rq, ctx)
		return true
	case Select:
		switch e.Entry.Action {
		case RecallInput:
			hub.Send(SetInputText{Tag: e.Entry.Tag, Text: e.Entry.Text})
			return true
		case SetKeyboardLayout:
			ctx.Settings.KeyboardLayout = e.Entry.Text
			if kb, ok := ov.Keyboard(); ok && ov.Focus() != TagGoToPageInput {
				kb.SetLayout(ctx.Layout(e.Entry.Text), rq)
			}
			return true
		}
	case Notify:
		ShowNotification(p, TagMessageNotif, e.Text, hub, rq, ctx)
		return true
	}
	return false
}
