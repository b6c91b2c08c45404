package domain

// MFAEnrollment carries what a user needs to add the account to an
// authenticator app.
type MFAEnrollment struct {
	Secret  string // base32
	URL     string // otpauth:// URL, suitable for a QR code
	Issuer  string
	Account string
}
