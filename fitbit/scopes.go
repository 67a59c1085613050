package fitbit

// Scope is an OAuth2 permission scope recognized by the Fitbit Web API.
type Scope string

// The scopes Fitbit defines. Each endpoint method documents the scopes it
// requires; a client authorized without them fails with *ScopeError before
// any request is made.
const (
	ScopeActivity  Scope = "activity"
	ScopeHeartrate Scope = "heartrate"
	ScopeLocation  Scope = "location"
	ScopeNutrition Scope = "nutrition"
	ScopeProfile   Scope = "profile"
	ScopeSettings  Scope = "settings"
	ScopeSleep     Scope = "sleep"
	ScopeSocial    Scope = "social"
	ScopeWeight    Scope = "weight"
)

// AllScopes returns every scope the API defines. This is the default scope
// set when Config.Scopes is empty.
func AllScopes() []Scope {
	return []Scope{
		ScopeActivity,
		ScopeHeartrate,
		ScopeLocation,
		ScopeNutrition,
		ScopeProfile,
		ScopeSettings,
		ScopeSleep,
		ScopeSocial,
		ScopeWeight,
	}
}

func scopeStrings(scopes []Scope) []string {
	out := make([]string, len(scopes))
	for i, s := range scopes {
		out[i] = string(s)
	}
	return out
}
