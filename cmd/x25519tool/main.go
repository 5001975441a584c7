// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// x25519tool is a small utility for exercising the x25519 package from
// the command line: generating a keypair, running a full two-party
// round trip, and stretching a raw shared secret into a symmetric key.
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/crypto/hkdf"

	"github.com/relaycrypt/x25519"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: x25519tool genkey|demo|derive ...")
	}

	switch os.Args[1] {
	case "genkey":
		genkeyCmd(os.Args[2:])
	case "demo":
		demoCmd(os.Args[2:])
	case "derive":
		deriveCmd(os.Args[2:])
	default:
		log.Fatalf("invalid command: %s", os.Args[1])
	}
}

func randomScalar() [32]byte {
	var s [32]byte
	if _, err := rand.Read(s[:]); err != nil {
		log.Fatalf("could not read random scalar: %s", err)
	}
	return s
}

func genkeyCmd(args []string) {
	fs := flag.NewFlagSet("genkey", flag.ExitOnError)
	fs.Parse(args)

	scalar := randomScalar()
	var pub [32]byte
	x25519.ScalarBaseMult(&pub, &scalar)

	fmt.Printf("private: %s\n", hex.EncodeToString(scalar[:]))
	fmt.Printf("public:  %s\n", hex.EncodeToString(pub[:]))
}

// demoCmd runs a full Diffie-Hellman round trip between two randomly
// generated parties and checks that both sides agree on the shared
// secret.
func demoCmd(args []string) {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	fs.Parse(args)

	aliceScalar := randomScalar()
	bobScalar := randomScalar()

	alicePub, err := x25519.X25519(aliceScalar[:], x25519.Basepoint)
	if err != nil {
		log.Fatalf("alice: could not derive public key: %s", err)
	}
	bobPub, err := x25519.X25519(bobScalar[:], x25519.Basepoint)
	if err != nil {
		log.Fatalf("bob: could not derive public key: %s", err)
	}

	aliceShared, err := x25519.X25519(aliceScalar[:], bobPub)
	if err != nil {
		log.Fatalf("alice: could not derive shared secret: %s", err)
	}
	bobShared, err := x25519.X25519(bobScalar[:], alicePub)
	if err != nil {
		log.Fatalf("bob: could not derive shared secret: %s", err)
	}

	fmt.Printf("alice public: %s\n", hex.EncodeToString(alicePub))
	fmt.Printf("bob public:   %s\n", hex.EncodeToString(bobPub))
	fmt.Printf("alice shared: %s\n", hex.EncodeToString(aliceShared))
	fmt.Printf("bob shared:   %s\n", hex.EncodeToString(bobShared))

	if string(aliceShared) != string(bobShared) {
		log.Fatalf("alice and bob disagree on the shared secret")
	}
	fmt.Println("agreement: ok")
}

// deriveCmd stretches a raw X25519 shared secret, read as hex from
// -secret, into a symmetric key of -length bytes via HKDF-SHA256,
// binding the output to -label so that keys derived from the same
// shared secret for different purposes do not collide.
func deriveCmd(args []string) {
	fs := flag.NewFlagSet("derive", flag.ExitOnError)
	secretHex := fs.String("secret", "", "raw shared secret, hex encoded")
	label := fs.String("label", "x25519tool", "context label mixed into the derivation")
	length := fs.Int("length", 32, "derived key length in bytes")
	fs.Parse(args)

	if *secretHex == "" {
		log.Fatalf("-secret is required")
	}
	secret, err := hex.DecodeString(*secretHex)
	if err != nil {
		log.Fatalf("could not decode -secret: %s", err)
	}

	expander := hkdf.New(sha256.New, secret, nil, []byte(*label))
	key := make([]byte, *length)
	if _, err := io.ReadFull(expander, key); err != nil {
		log.Fatalf("could not derive key: %s", err)
	}

	fmt.Printf("%s\n", hex.EncodeToString(key))
}
