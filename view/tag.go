package view

import "fmt"

// Tag names the logical role of a view so it can be found regardless of
// its position among its siblings. Most views carry NoTag.
type Tag int

const (
	NoTag Tag = iota
	TagHome
	TagWorks
	TagTopBar
	TagBottomBar
	TagSearchBar
	TagHomeSearchInput
	TagWorksSearchInput
	TagGoToPage
	TagGoToPageInput
	TagKeyboard
	TagMainMenu
	TagBatteryMenu
	TagClockMenu
	TagSortMenu
	TagEntryMenu
	TagInputHistoryMenu
	TagKeyboardLayoutMenu
	TagInvalidSearchQueryNotif
	TagMessageNotif
	TagShelf
)

var tagNames = [...]string{
	NoTag:                      "none",
	TagHome:                    "home",
	TagWorks:                   "works",
	TagTopBar:                  "top-bar",
	TagBottomBar:               "bottom-bar",
	TagSearchBar:               "search-bar",
	TagHomeSearchInput:         "home-search-input",
	TagWorksSearchInput:        "works-search-input",
	TagGoToPage:                "go-to-page",
	TagGoToPageInput:           "go-to-page-input",
	TagKeyboard:                "keyboard",
	TagMainMenu:                "main-menu",
	TagBatteryMenu:             "battery-menu",
	TagClockMenu:               "clock-menu",
	TagSortMenu:                "sort-menu",
	TagEntryMenu:               "entry-menu",
	TagInputHistoryMenu:        "input-history-menu",
	TagKeyboardLayoutMenu:      "keyboard-layout-menu",
	TagInvalidSearchQueryNotif: "invalid-search-query-notif",
	TagMessageNotif:            "message-notif",
	TagShelf:                   "shelf",
}

func (t Tag) String() string {
	if t >= 0 && int(t) < len(tagNames) {
		return tagNames[t]
	}
	return fmt.Sprintf("tag(%d)", int(t))
}

// IsTextInput reports whether t names a view that takes keyboard input.
// Focusing such a view brings up the on-screen keyboard.
func (t Tag) IsTextInput() bool {
	switch t {
	case TagHomeSearchInput, TagWorksSearchInput, TagGoToPageInput:
		return true
	}
	return false
}

// IsNotification reports whether t names a transient notification.
func (t Tag) IsNotification() bool {
	return t == TagInvalidSearchQueryNotif || t == TagMessageNotif
}

// IsMenu reports whether t names a floating menu.
func (t Tag) IsMenu() bool {
	switch t {
	case TagMainMenu, TagBatteryMenu, TagClockMenu, TagSortMenu, TagEntryMenu, TagInputHistoryMenu, TagKeyboardLayoutMenu:
		return true
	}
	return false
}
