package models

// LoginResult is returned after a successful credential check.
type LoginResult struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username"`
	Redirect      string `json:"redirect"`
}
