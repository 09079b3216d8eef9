package keyfile_test

import (
	"bytes"
	"context"
	"fmt"

	"github.com/awnumar/memguard"
	"github.com/rbaliyan/keyfile"
)

func ExampleLoad() {
	// A raw 32-byte file is used verbatim as the key.
	raw := bytes.Repeat([]byte{0x41}, 32)

	key, err := keyfile.Load(context.Background(), raw)
	if err != nil {
		panic(err)
	}

	err = key.Use(func(k []byte) error {
		fmt.Printf("key: %x...\n", k[:4])
		return nil
	})
	if err != nil {
		panic(err)
	}

	// Output: key: 41414141...
}

func ExampleLoad_hexText() {
	// A 64-character hex file decodes to the 32-byte key.
	raw := []byte("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")

	key, err := keyfile.Load(context.Background(), raw)
	if err != nil {
		panic(err)
	}

	k, err := key.Bytes()
	if err != nil {
		panic(err)
	}
	defer memguard.WipeBytes(k)

	fmt.Printf("key: %x...\n", k[:4])
	// Output: key: 00010203...
}

func ExampleLoad_databaseCheck() {
	// The guard refuses a file that is actually a database container.
	database := []byte{0x03, 0xD9, 0xA2, 0x9A, 0x67, 0xFB, 0x4B, 0xB5}

	_, err := keyfile.Load(context.Background(), database, keyfile.WithDatabaseCheck())
	fmt.Println(keyfile.IsDatabaseFile(err))
	// Output: true
}

func ExampleCreate() {
	// Create returns the canonical XML key document; Load resolves it back.
	doc, err := keyfile.Create(nil)
	if err != nil {
		panic(err)
	}

	key, err := keyfile.Load(context.Background(), doc)
	if err != nil {
		panic(err)
	}

	err = key.Use(func(k []byte) error {
		fmt.Println("key length:", len(k))
		return nil
	})
	if err != nil {
		panic(err)
	}

	// Output: key length: 32
}
