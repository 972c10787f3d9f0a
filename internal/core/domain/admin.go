package domain

// Admin is a back-office operator account. Admins are provisioned directly in
// the database; the API exposes no creation or mutation endpoint for them.
type Admin struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
