// Package protocol defines the wire messages exchanged between the
// loadout editor client and the authoritative server: typed action
// requests, correlated responses, and the server push messages that feed
// the client prediction cache.
package protocol

// ActionType tags a request with the operation it asks for
type ActionType string

// Action types
const (
	ActionAddItem              ActionType = "ADD_ITEM"
	ActionRemoveItem           ActionType = "REMOVE_ITEM"
	ActionReplaceItem          ActionType = "REPLACE_ITEM"
	ActionGetLoadouts          ActionType = "GET_LOADOUTS"
	ActionSaveLoadout          ActionType = "SAVE_LOADOUT"
	ActionClearLoadout         ActionType = "CLEAR_LOADOUT"
	ActionApplyLoadout         ActionType = "APPLY_LOADOUT"
	ActionGetAdminLoadouts     ActionType = "GET_ADMIN_LOADOUTS"
	ActionSaveLoadoutAdmin     ActionType = "SAVE_LOADOUT_ADMIN"
	ActionApplyLoadoutAdmin    ActionType = "APPLY_LOADOUT_ADMIN"
	ActionSetAILoadoutAdmin    ActionType = "SET_AI_LOADOUT_ADMIN"
	ActionClearLoadoutAdmin    ActionType = "CLEAR_LOADOUT_ADMIN"
	ActionChangeVisualIdentity ActionType = "CHANGE_VISUAL_IDENTITY"
	ActionChangeSoundIdentity  ActionType = "CHANGE_SOUND_IDENTITY"
)

var actionTypes = map[ActionType]struct{}{
	ActionAddItem: {}, ActionRemoveItem: {}, ActionReplaceItem: {},
	ActionGetLoadouts: {}, ActionSaveLoadout: {}, ActionClearLoadout: {},
	ActionApplyLoadout: {}, ActionGetAdminLoadouts: {}, ActionSaveLoadoutAdmin: {},
	ActionApplyLoadoutAdmin: {}, ActionSetAILoadoutAdmin: {}, ActionClearLoadoutAdmin: {},
	ActionChangeVisualIdentity: {}, ActionChangeSoundIdentity: {},
}

// Valid reports whether the tag names a known action
func (a ActionType) Valid() bool {
	_, ok := actionTypes[a]
	return ok
}

// IsStorage reports whether the action mutates an inventory storage slot
func (a ActionType) IsStorage() bool {
	switch a {
	case ActionAddItem, ActionRemoveItem, ActionReplaceItem,
		ActionChangeVisualIdentity, ActionChangeSoundIdentity:
		return true
	}
	return false
}

// IsLoadout reports whether the action targets a saved loadout slot
func (a ActionType) IsLoadout() bool {
	return a.Valid() && !a.IsStorage()
}

// IsAdmin reports whether the action operates on the shared admin pool
// and therefore requires admin rights
func (a ActionType) IsAdmin() bool {
	switch a {
	case ActionGetAdminLoadouts, ActionSaveLoadoutAdmin, ActionApplyLoadoutAdmin,
		ActionSetAILoadoutAdmin, ActionClearLoadoutAdmin:
		return true
	}
	return false
}

// Request is the client-to-server action message. It is a tagged union:
// ActionType selects which fields are meaningful. Storage actions use the
// arsenal/storage/prefab fields; loadout actions use LoadoutSlotID plus
// the arsenal reference. The whole request is echoed back inside the
// response, which is the only correlation mechanism the protocol has.
type Request struct {
	ActionType ActionType `json:"actionType"`

	// storage action fields
	ArsenalEntityID uint64 `json:"arsenalEntityId,omitempty"`
	StorageID       uint64 `json:"storageId,omitempty"`
	StorageSlotID   int    `json:"storageSlotId"`
	Prefab          string `json:"prefab,omitempty"`

	// loadout action fields
	LoadoutSlotID      int    `json:"loadoutSlotId"`
	ArsenalComponentID uint64 `json:"arsenalComponentId,omitempty"`
}

// NewStorageRequest builds a storage mutation request
func NewStorageRequest(action ActionType, arsenalEntityID, storageID uint64, slotID int, prefab string) *Request {
	return &Request{
		ActionType:      action,
		ArsenalEntityID: arsenalEntityID,
		StorageID:       storageID,
		StorageSlotID:   slotID,
		Prefab:          prefab,
		LoadoutSlotID:   -1,
	}
}

// NewLoadoutRequest builds a saved-loadout request
func NewLoadoutRequest(action ActionType, arsenalComponentID uint64, loadoutSlotID int) *Request {
	return &Request{
		ActionType:         action,
		StorageSlotID:      -1,
		LoadoutSlotID:      loadoutSlotID,
		ArsenalComponentID: arsenalComponentID,
	}
}

// Response is the server-to-owner outcome message. Message is shown
// directly in the client UI, so it must read as user-facing text.
type Response struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Request *Request `json:"request"`
}

// OK builds a success response echoing the request
func OK(req *Request, message string) *Response {
	return &Response{Success: true, Message: message, Request: req}
}

// Fail builds a failure response echoing the request
func Fail(req *Request, message string) *Response {
	return &Response{Success: false, Message: message, Request: req}
}
