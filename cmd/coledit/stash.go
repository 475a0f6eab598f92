package main

import (
	"bufio"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"

	"coldump/types"
)

// Evil global variables
var g_stash_filename = "coledit.tmp"

// stash keeps the loaded game between commands: the filename, then the savegame, gob-encoded and
// compressed (the map alone is over 16k cells).
func stash(filename string, savegame *types.Savegame) error {
	f, err := os.Create(g_stash_filename)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	w := bufio.NewWriter(enc)
	encoder := gob.NewEncoder(w)
	err = encoder.Encode(filename)
	if err == nil {
		err = encoder.Encode(savegame)
	}
	if err != nil {
		enc.Close()
		return fmt.Errorf("gob encode: %w", err)
	}
	err = w.Flush()
	if err != nil {
		enc.Close()
		return err
	}
	err = enc.Close()
	if err != nil {
		return err
	}
	return f.Sync()
}

func retrieve() (string, *types.Savegame, error) {
	f, err := os.Open(g_stash_filename)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, &types.LogicError{Mutation: "retrieve", Reason: "nothing loaded (use \"load\" first)"}
		}
		return "", nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return "", nil, err
	}
	defer dec.Close()

	decoder := gob.NewDecoder(bufio.NewReader(dec))
	var filename string
	savegame := types.Savegame{}
	err = decoder.Decode(&filename)
	if err != nil {
		return "", nil, fmt.Errorf("gob decode: %w", err)
	}
	err = decoder.Decode(&savegame)
	if err != nil {
		return "", nil, fmt.Errorf("gob decode: %w", err)
	}

	return filename, &savegame, nil
}
