package controller

import "github.com/MKhiriev/rate-keeper/models"

// IntentKind names a user action.
type IntentKind int

const (
	IntentSelectProfile IntentKind = iota + 1
	IntentSubmitCode
	IntentCancel
	IntentOpenItem
	IntentCreateItem
	IntentDeleteItem
	IntentBack
	IntentOpenRankings
	IntentToggleRankingMode
	IntentOpenRankingEntry
	IntentSelectScore
	IntentMoveCursor
	IntentAdjustScore
	IntentSetScore
	IntentSubmitRating
	IntentRefresh
	IntentLogout
	IntentDismissNotice
)

var intentNames = map[IntentKind]string{
	IntentSelectProfile:     "select_profile",
	IntentSubmitCode:        "submit_code",
	IntentCancel:            "cancel",
	IntentOpenItem:          "open_item",
	IntentCreateItem:        "create_item",
	IntentDeleteItem:        "delete_item",
	IntentBack:              "back",
	IntentOpenRankings:      "open_rankings",
	IntentToggleRankingMode: "toggle_ranking_mode",
	IntentOpenRankingEntry:  "open_ranking_entry",
	IntentSelectScore:       "select_score",
	IntentMoveCursor:        "move_cursor",
	IntentAdjustScore:       "adjust_score",
	IntentSetScore:          "set_score",
	IntentSubmitRating:      "submit_rating",
	IntentRefresh:           "refresh",
	IntentLogout:            "logout",
	IntentDismissNotice:     "dismiss_notice",
}

func (k IntentKind) String() string {
	if name, ok := intentNames[k]; ok {
		return name
	}
	return "unknown"
}

// Intent is one user action with its arguments. Only the fields relevant
// to Kind are read.
type Intent struct {
	Kind IntentKind

	ProfileID int
	Code      string
	Name      string
	ItemID    string

	Field models.ScoreField
	Delta int
	Value int

	Seq uint64
}

func SelectProfile(profileID int) Intent {
	return Intent{Kind: IntentSelectProfile, ProfileID: profileID}
}

func SubmitCode(code string) Intent {
	return Intent{Kind: IntentSubmitCode, Code: code}
}

func Cancel() Intent {
	return Intent{Kind: IntentCancel}
}

func OpenItem(itemID string) Intent {
	return Intent{Kind: IntentOpenItem, ItemID: itemID}
}

func CreateItem(code, name string) Intent {
	return Intent{Kind: IntentCreateItem, Code: code, Name: name}
}

func DeleteItem(itemID string) Intent {
	return Intent{Kind: IntentDeleteItem, ItemID: itemID}
}

func Back() Intent {
	return Intent{Kind: IntentBack}
}

func OpenRankings() Intent {
	return Intent{Kind: IntentOpenRankings}
}

func ToggleRankingMode() Intent {
	return Intent{Kind: IntentToggleRankingMode}
}

func OpenRankingEntry(itemID string) Intent {
	return Intent{Kind: IntentOpenRankingEntry, ItemID: itemID}
}

// SelectScore moves the editor cursor to field.
func SelectScore(field models.ScoreField) Intent {
	return Intent{Kind: IntentSelectScore, Field: field}
}

// MoveCursor moves the editor cursor to the next control when delta is
// positive and to the previous one otherwise.
func MoveCursor(delta int) Intent {
	return Intent{Kind: IntentMoveCursor, Delta: delta}
}

// AdjustScore adds delta to the score under the editor cursor.
func AdjustScore(delta int) Intent {
	return Intent{Kind: IntentAdjustScore, Delta: delta}
}

func SetScore(field models.ScoreField, value int) Intent {
	return Intent{Kind: IntentSetScore, Field: field, Value: value}
}

func SubmitRating() Intent {
	return Intent{Kind: IntentSubmitRating}
}

// Refresh reloads the data of the current view.
func Refresh() Intent {
	return Intent{Kind: IntentRefresh}
}

func Logout() Intent {
	return Intent{Kind: IntentLogout}
}

func DismissNotice(seq uint64) Intent {
	return Intent{Kind: IntentDismissNotice, Seq: seq}
}
