package user

// Credentials and Registration are checked locally before the marketplace,
// which owns accounts and password hashes, ever sees them.

type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() Email       { return c.email }
func (c Credentials) Password() Password { return c.password }

type Registration struct {
	username Username
	Credentials
}

func NewRegistration(usernameStr, emailStr, passwordStr string) (*Registration, error) {
	username, err := NewUsername(usernameStr)
	if err != nil {
		return nil, err
	}

	creds, err := NewCredentials(emailStr, passwordStr)
	if err != nil {
		return nil, err
	}

	return &Registration{
		username:    username,
		Credentials: creds,
	}, nil
}

func (r *Registration) Username() Username { return r.username }
