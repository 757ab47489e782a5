package protocol

import (
	"encoding/json"

	"github.com/paddockgames/loadout-api/internal/errors"
)

// MsgType identifies the payload carried by an Envelope
type MsgType string

// Envelope message types
const (
	MsgRequest       MsgType = "request"
	MsgResponse      MsgType = "response"
	MsgCachePush     MsgType = "cache_push"
	MsgSlotUpdate    MsgType = "slot_update"
	MsgAdminLoadouts MsgType = "admin_loadouts_changed"
)

// Envelope is the framing for every message on the socket. Exactly one
// payload field is set, selected by Type.
type Envelope struct {
	Type          MsgType          `json:"type"`
	Request       *Request         `json:"request,omitempty"`
	Response      *Response        `json:"response,omitempty"`
	CachePush     *CachePush       `json:"cachePush,omitempty"`
	SlotUpdate    *SlotUpdate      `json:"slotUpdate,omitempty"`
	AdminLoadouts []LoadoutSummary `json:"adminLoadouts,omitempty"`
}

// CachePush is the server's full snapshot of a player's saved-loadout
// validity, sent once on connect and again after every loadout mutation.
// Factions absent from ValidSlots are left untouched on the client;
// factions present are replaced wholesale.
type CachePush struct {
	ValidSlots  map[string][]int  `json:"validSlots"`
	LoadoutData []LoadoutTransfer `json:"loadoutData"`
}

// LoadoutTransfer is the denormalized per-slot payload inside a push,
// enough for the deploy screen to preview a loadout without another
// round trip.
type LoadoutTransfer struct {
	FactionKey   string  `json:"factionKey"`
	SlotIndex    int     `json:"slotIndex"`
	Prefab       string  `json:"prefab"`
	LoadoutData  string  `json:"loadoutData"`
	Cost         float64 `json:"cost"`
	RequiredRank string  `json:"requiredRank"`
}

// SlotUpdate notifies the owning client that a single saved slot changed
// validity, cheaper than a full push after save/clear.
type SlotUpdate struct {
	FactionKey string `json:"factionKey"`
	SlotIndex  int    `json:"slotIndex"`
	Valid      bool   `json:"valid"`
}

// LoadoutSummary is the list-rendering payload returned by GET_LOADOUTS
// and broadcast on admin-loadout changes.
type LoadoutSummary struct {
	SlotID       int     `json:"slotId"`
	DisplayName  string  `json:"displayName"`
	Clothes      string  `json:"clothes"`
	Weapons      string  `json:"weapons"`
	SupplyCost   float64 `json:"supplyCost"`
	RequiredRank string  `json:"requiredRank"`
	CreatedAt    int64   `json:"createdAt"`
	ModifiedAt   int64   `json:"modifiedAt"`
	HasData      bool    `json:"hasData"`
}

// EncodeEnvelope serializes an envelope for the wire
func EncodeEnvelope(env *Envelope) ([]byte, error) {
	raw, err := json.Marshal(env)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode envelope")
	}
	return raw, nil
}

// DecodeEnvelope parses a wire frame. A frame that parses but carries an
// unknown type or a request with an unknown action is rejected here so
// handlers only ever see well-formed messages.
func DecodeEnvelope(raw []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed message")
	}

	switch env.Type {
	case MsgRequest:
		if env.Request == nil {
			return nil, errors.InvalidArgument("request message missing request payload")
		}
		if !env.Request.ActionType.Valid() {
			return nil, errors.InvalidArgumentf("unknown action type %q", env.Request.ActionType)
		}
	case MsgResponse, MsgCachePush, MsgSlotUpdate, MsgAdminLoadouts:
	default:
		return nil, errors.InvalidArgumentf("unknown message type %q", env.Type)
	}

	return &env, nil
}

// MarshalSummaries renders a loadout list as the response message payload
// carried by GET_LOADOUTS / GET_ADMIN_LOADOUTS responses.
func MarshalSummaries(summaries []LoadoutSummary) (string, error) {
	raw, err := json.Marshal(summaries)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode loadout list")
	}
	return string(raw), nil
}

// UnmarshalSummaries parses a loadout list out of a response message.
// Corrupt payloads yield an empty list, never a failure surfaced to UI.
func UnmarshalSummaries(payload string) []LoadoutSummary {
	var summaries []LoadoutSummary
	if err := json.Unmarshal([]byte(payload), &summaries); err != nil {
		return nil
	}
	return summaries
}
