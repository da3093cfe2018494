package crypto

// OperationIdentity describes one concrete crypto operation to the shared
// command pipeline. It is fixed when the command is registered and never
// mutated: the tenses feed help and status text, the key role selects the
// KeyCodec entry point.
type OperationIdentity struct {
	Name             string
	PastTense        string
	ProgressiveTense string
	KeyRole          KeyRole
}

// EncryptIdentity is the identity of the encrypt command.
var EncryptIdentity = OperationIdentity{
	Name:             "encrypt",
	PastTense:        "encrypted",
	ProgressiveTense: "encrypting",
	KeyRole:          KeyRolePublic,
}

// DecryptIdentity is the identity of the decrypt command.
var DecryptIdentity = OperationIdentity{
	Name:             "decrypt",
	PastTense:        "decrypted",
	ProgressiveTense: "decrypting",
	KeyRole:          KeyRolePrivate,
}
