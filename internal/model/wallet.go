package model

// CWTFile represents encrypted key file structure
type CWTFile struct {
	Network    string `json:"network"`
	Address    string `json:"address"`
	QR         string `json:"QR"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// WalletData represents decrypted key file data
type WalletData struct {
	PrivateKey []byte `json:"privateKey"` // 32 bytes Ed25519 seed (stored as base64 in JSON)
	CreatedAt  string `json:"createdAt"`
}
