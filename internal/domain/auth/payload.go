package auth

import (
	"fmt"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"
)

// Upstream payloads are loosely typed: the same semantic value shows up
// under different names and casings across endpoints. All probing lives
// here, expressed as JMESPath alias chains, so the rest of the codebase
// only ever handles the canonical Profile and LoginPayload shapes.

// LoginPayload is the normalized shape of a successful credential login
// response.
type LoginPayload struct {
	Token    string
	Verified bool
	Profile  *Profile
}

const (
	tokenExpr    = `token || data.token || accessToken`
	verifiedExpr = `data.isVerified || isVerified`
	profileExpr  = `data.userProfile || userProfile || User || user`

	userIDExpr     = `userId || UserId || Id`
	staffIDExpr    = `staffId || StaffId || StaffID`
	nameExpr       = `staffName || StaffName || name || fullName`
	emailExpr      = `emailId || email || Email || emailAddress`
	phoneExpr      = `phoneNo || PhoneNo || phone || mobileNo`
	roleExpr       = `role || Role`
	usernameExpr   = `userName || username`
	departmentExpr = `departmentId || DepartmentId`
	lastLoginExpr  = `lastLogin || lastLoginAt || LastLogin`
)

// LoginPayloadFrom normalizes a credential login response body that has
// already been decoded into generic JSON. Missing pieces stay zero; a
// payload with no recognizable profile yields a nil Profile, not an error.
func LoginPayloadFrom(body any) LoginPayload {
	p := LoginPayload{
		Token:    searchString(tokenExpr, body),
		Verified: searchBool(verifiedExpr, body),
	}
	if raw, err := jmespath.Search(profileExpr, body); err == nil && raw != nil {
		prof := ProfileFromPayload(raw)
		p.Profile = &prof
	}
	return p
}

// ProfileFromPayload normalizes a raw profile object into the canonical
// Profile. Field aliases are probed in a fixed order; the first non-empty
// match wins. Unknown extra fields are dropped.
func ProfileFromPayload(raw any) Profile {
	p := Profile{
		UserID:       searchString(userIDExpr, raw),
		StaffID:      searchString(staffIDExpr, raw),
		DisplayName:  searchString(nameExpr, raw),
		Email:        searchString(emailExpr, raw),
		Phone:        searchString(phoneExpr, raw),
		Role:         searchString(roleExpr, raw),
		Username:     searchString(usernameExpr, raw),
		DepartmentID: searchString(departmentExpr, raw),
		Verified:     searchBool(verifiedExpr, raw),
	}
	if ts := searchString(lastLoginExpr, raw); ts != "" {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			p.LastLogin = t
		}
	}
	return p
}

// searchString evaluates an alias chain and coerces the result to a
// string. Numeric identifiers (JSON numbers) are rendered without an
// exponent so staff ids survive the trip.
func searchString(expr string, data any) string {
	v, err := jmespath.Search(expr, data)
	if err != nil || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	default:
		return ""
	}
}

func searchBool(expr string, data any) bool {
	v, err := jmespath.Search(expr, data)
	if err != nil || v == nil {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}
