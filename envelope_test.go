package sealbox

import (
	"errors"
	"strings"
	"testing"
)

func generateTestKey(t *testing.T) string {
	t.Helper()

	key, err := GenerateEncryptionKey()
	if err != nil {
		t.Fatalf("GenerateEncryptionKey() error = %v", err)
	}
	return key
}

func TestEncrypt_Decrypt_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext string
	}{
		{"empty", ""},
		{"simple", "hello world"},
		{"unicode", "héllo wörld 今日は"},
		{"contains separator", "a:b:c:d"},
		{"long", strings.Repeat("lorem ipsum ", 1000)},
	}

	key := generateTestKey(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelope, err := Encrypt(key, tt.plaintext)
			if err != nil {
				t.Fatalf("Encrypt() error = %v", err)
			}

			decrypted, err := Decrypt(key, envelope)
			if err != nil {
				t.Fatalf("Decrypt() error = %v", err)
			}

			if decrypted != tt.plaintext {
				t.Errorf("decrypted = %q, want %q", decrypted, tt.plaintext)
			}
		})
	}
}

func TestEncrypt_EnvelopeShape(t *testing.T) {
	// Known vector from the format definition: all-zero key, "hello"
	key := strings.Repeat("0", 64)

	envelope, err := Encrypt(key, "hello")
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}

	if strings.Count(envelope, ":") != 2 {
		t.Errorf("envelope has %d colons, want 2", strings.Count(envelope, ":"))
	}

	parts := strings.Split(envelope, ":")
	if parts[0] != Version {
		t.Errorf("version field = %q, want %q", parts[0], Version)
	}
	if len(parts[1]) != 48 {
		t.Errorf("nonce field length = %d, want 48", len(parts[1]))
	}

	decrypted, err := Decrypt(key, envelope)
	if err != nil {
		t.Fatalf("Decrypt() error = %v", err)
	}
	if decrypted != "hello" {
		t.Errorf("decrypted = %q, want %q", decrypted, "hello")
	}
}

func TestEncrypt_NonceUniqueness(t *testing.T) {
	key := generateTestKey(t)

	env1, err := Encrypt(key, "same plaintext")
	if err != nil {
		t.Fatal(err)
	}
	env2, err := Encrypt(key, "same plaintext")
	if err != nil {
		t.Fatal(err)
	}

	if env1 == env2 {
		t.Error("two encryptions of the same plaintext produced identical envelopes")
	}

	nonce1 := strings.Split(env1, ":")[1]
	nonce2 := strings.Split(env2, ":")[1]
	if nonce1 == nonce2 {
		t.Error("two encryptions reused a nonce")
	}
}

func TestEncrypt_InvalidKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"not hex", strings.Repeat("zz", 32)},
		{"too short", strings.Repeat("00", 16)},
		{"too long", strings.Repeat("00", 64)},
		{"odd length", strings.Repeat("0", 63)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Encrypt(tt.key, "plaintext"); !errors.Is(err, ErrInvalidKey) {
				t.Errorf("expected ErrInvalidKey, got %v", err)
			}
		})
	}
}

func TestDecrypt_WrongKey(t *testing.T) {
	key1 := generateTestKey(t)
	key2 := generateTestKey(t)

	envelope, err := Encrypt(key1, "secret")
	if err != nil {
		t.Fatal(err)
	}

	_, err = Decrypt(key2, envelope)
	if !errors.Is(err, ErrDecryptionFailed) {
		t.Errorf("expected ErrDecryptionFailed, got %v", err)
	}
	// Authentication failure must be the bare sentinel, distinguishable
	// from structural errors
	if errors.Is(err, ErrInvalidEnvelope) {
		t.Error("authentication failure must not match ErrInvalidEnvelope")
	}
}

func TestDecrypt_MalformedEnvelope(t *testing.T) {
	key := generateTestKey(t)

	tests := []struct {
		name     string
		envelope string
	}{
		{"empty", ""},
		{"no separators", "notanenvelope"},
		{"two fields", "001:abcdef"},
		{"four fields", "001:ab:cd:ef"},
		{"nonce not hex", "001:" + strings.Repeat("zz", 24) + ":aGVsbG8="},
		{"nonce wrong length", "001:" + strings.Repeat("00", 12) + ":aGVsbG8="},
		{"ciphertext not base64", "001:" + strings.Repeat("00", 24) + ":!!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decrypt(key, tt.envelope)
			if !errors.Is(err, ErrInvalidEnvelope) {
				t.Errorf("expected ErrInvalidEnvelope, got %v", err)
			}
			if errors.Is(err, ErrDecryptionFailed) {
				t.Error("structural error must not match ErrDecryptionFailed")
			}
		})
	}
}

func TestDecrypt_TamperedCiphertext(t *testing.T) {
	key := generateTestKey(t)

	envelope, err := Encrypt(key, "authentic message")
	if err != nil {
		t.Fatal(err)
	}

	parts := strings.Split(envelope, ":")

	t.Run("nonce region", func(t *testing.T) {
		nonce := []byte(parts[1])
		if nonce[0] == '0' {
			nonce[0] = '1'
		} else {
			nonce[0] = '0'
		}

		tampered := strings.Join([]string{parts[0], string(nonce), parts[2]}, ":")
		if _, err := Decrypt(key, tampered); !errors.Is(err, ErrDecryptionFailed) {
			t.Errorf("expected ErrDecryptionFailed, got %v", err)
		}
	})

	t.Run("ciphertext region", func(t *testing.T) {
		// Substitute a base64 character so the field still decodes but the
		// underlying ciphertext bytes change
		ct := []byte(parts[2])
		if ct[0] == 'A' {
			ct[0] = 'B'
		} else {
			ct[0] = 'A'
		}

		tampered := strings.Join([]string{parts[0], parts[1], string(ct)}, ":")
		if _, err := Decrypt(key, tampered); !errors.Is(err, ErrDecryptionFailed) {
			t.Errorf("expected ErrDecryptionFailed, got %v", err)
		}
	})

	t.Run("tag region", func(t *testing.T) {
		// The Poly1305 tag is the tail of the ciphertext field
		ct := []byte(parts[2])
		i := len(ct) - 1
		for ct[i] == '=' {
			i--
		}
		if ct[i] == 'A' {
			ct[i] = 'B'
		} else {
			ct[i] = 'A'
		}

		tampered := strings.Join([]string{parts[0], parts[1], string(ct)}, ":")
		if _, err := Decrypt(key, tampered); !errors.Is(err, ErrDecryptionFailed) {
			t.Errorf("expected ErrDecryptionFailed, got %v", err)
		}
	})
}

func TestDecrypt_VersionHandling(t *testing.T) {
	key := generateTestKey(t)

	envelope, err := Encrypt(key, "hello")
	if err != nil {
		t.Fatal(err)
	}
	rest := envelope[len(Version):]

	t.Run("older version rejected", func(t *testing.T) {
		_, err := Decrypt(key, "000"+rest)
		if !errors.Is(err, ErrVersionTooOld) {
			t.Fatalf("expected ErrVersionTooOld, got %v", err)
		}

		var verr *VersionError
		if !errors.As(err, &verr) {
			t.Fatal("expected a *VersionError")
		}
		if verr.Version != "000" {
			t.Errorf("VersionError.Version = %q, want %q", verr.Version, "000")
		}
	})

	t.Run("current version accepted", func(t *testing.T) {
		plaintext, err := Decrypt(key, envelope)
		if err != nil {
			t.Fatalf("Decrypt() error = %v", err)
		}
		if plaintext != "hello" {
			t.Errorf("decrypted = %q, want %q", plaintext, "hello")
		}
	})

	t.Run("newer version attempted", func(t *testing.T) {
		// The version tag is not authenticated, and newer tags are not
		// rejected, so the payload still decrypts. Documents the
		// forward-compatibility behavior of the format.
		plaintext, err := Decrypt(key, "002"+rest)
		if err != nil {
			t.Fatalf("Decrypt() error = %v", err)
		}
		if plaintext != "hello" {
			t.Errorf("decrypted = %q, want %q", plaintext, "hello")
		}
	})
}
