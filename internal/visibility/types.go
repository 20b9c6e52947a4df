package visibility

// Tier is the stored visibility setting of a post.
type Tier int8

const (
	Public        Tier = 0
	Private       Tier = 1
	MutualFriends Tier = 2
)

func (t Tier) IsValid() bool {
	return t == Public || t == Private || t == MutualFriends
}

// Label returns the client-facing label for a tier.
func (t Tier) Label() string {
	for _, opt := range Options {
		if opt.Value == t {
			return opt.Label
		}
	}
	return "未知"
}

type Option struct {
	Value Tier   `json:"value"`
	Label string `json:"label"`
}

// Options feeds the visibility picker on clients.
var Options = []Option{
	{Value: Public, Label: "公开"},
	{Value: Private, Label: "私密"},
	{Value: MutualFriends, Label: "仅互关好友可见"},
}

// Reason is a stable code callers use for messaging.
type Reason string

const (
	ReasonPostNotFound      Reason = "POST_NOT_FOUND"
	ReasonDraftOnlyAuthor   Reason = "DRAFT_ONLY_AUTHOR"
	ReasonAuthor            Reason = "AUTHOR"
	ReasonPublic            Reason = "PUBLIC"
	ReasonPrivate           Reason = "PRIVATE"
	ReasonLoginRequired     Reason = "LOGIN_REQUIRED"
	ReasonMutualFriends     Reason = "MUTUAL_FRIENDS"
	ReasonNotMutualFriends  Reason = "NOT_MUTUAL_FRIENDS"
	ReasonUnknownVisibility Reason = "UNKNOWN_VISIBILITY"
	ReasonError             Reason = "ERROR"
)

// AccessDecision always carries a reason, granted or not.
type AccessDecision struct {
	HasAccess bool   `json:"hasAccess"`
	Reason    Reason `json:"reason"`
}

func grant(r Reason) AccessDecision { return AccessDecision{HasAccess: true, Reason: r} }
func deny(r Reason) AccessDecision  { return AccessDecision{HasAccess: false, Reason: r} }

// Post is the part of a post the visibility rules look at.
// A viewer ID of 0 is anonymous throughout this package.
type Post struct {
	ID         uint64
	OwnerID    uint64
	Visibility Tier
	IsDraft    bool
}

func (p Post) ownedBy(viewerID uint64) bool {
	return viewerID != 0 && viewerID == p.OwnerID
}
