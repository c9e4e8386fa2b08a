package user

// User is the read-only projection of the external identity store that the
// negotiation protocol needs: enough to address a person and label a request.
// Credential storage and verification live outside this service.
type User struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
}
