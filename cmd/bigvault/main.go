//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command bigvault seals and opens an arbitrary-precision counter
// value in a small encrypted vault file. It is a repurposing of the
// filesystem encryption tool this repository used to ship: the
// kernel-backed encrypted filesystem is gone, but the same
// HKDF-Expand/ChaCha20-Poly1305 sealing idiom now protects a single
// bigint value instead of a directory tree.
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/markkurossi/bigint"
	"github.com/markkurossi/bigint/crypto/hkdf"
)

const (
	vaultInfo = "bigvault-v1"
)

func main() {
	passphrase := flag.String("p", "", "vault passphrase (required)")
	file := flag.String("f", "vault.bin", "vault file")
	initCmd := flag.Bool("init", false, "initialize a new vault with value 0")
	next := flag.Bool("next", false, "read the vault, increment it by 1, and reseal")
	flag.Parse()

	if *passphrase == "" {
		log.Fatalf("bigvault: -p passphrase is required")
	}
	key := deriveKey(*passphrase)

	switch {
	case *initCmd:
		if err := seal(*file, key, bigint.Zero); err != nil {
			log.Fatalf("bigvault: %v", err)
		}
		fmt.Println("vault initialized: 0")

	case *next:
		v, err := open(*file, key)
		if err != nil {
			log.Fatalf("bigvault: %v", err)
		}
		v = v.Add(bigint.NewInt(1))
		if err := seal(*file, key, v); err != nil {
			log.Fatalf("bigvault: %v", err)
		}
		fmt.Println(v.Text())

	default:
		v, err := open(*file, key)
		if err != nil {
			log.Fatalf("bigvault: %v", err)
		}
		fmt.Println(v.Text())
	}
}

// deriveKey expands the passphrase into a 256-bit ChaCha20-Poly1305
// key via the same HKDF-Expand construction used by the TLS 1.3
// record layer.
func deriveKey(passphrase string) []byte {
	prk := sha256.Sum256([]byte(passphrase))
	key := make([]byte, chacha20poly1305.KeySize)
	hkdf.ExpandTLS13(prk[:], []byte(vaultInfo), key)
	return key
}

func seal(path string, key []byte, v *bigint.Int) error {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return err
	}
	plaintext := []byte(v.Text())
	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return err
	}
	ciphertext := aead.Seal(nonce, nonce, plaintext, nil)
	return os.WriteFile(path, ciphertext, 0600)
}

func open(path string, key []byte) (*bigint.Int, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) < aead.NonceSize() {
		return nil, fmt.Errorf("vault file truncated")
	}
	nonce, ciphertext := data[:aead.NonceSize()], data[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("wrong passphrase or corrupt vault: %w", err)
	}
	return bigint.ParseDecimal(string(plaintext))
}
