package config

// SecretValue holds a credential that must not show up in logs.
type SecretValue string

func (s SecretValue) Value() string {
	return string(s)
}

func (s SecretValue) String() string {
	if s == "" {
		return ""
	}
	return "******"
}

func (s SecretValue) IsZero() bool {
	return s == ""
}
