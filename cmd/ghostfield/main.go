package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	ghostfield "github.com/Coercive/GhostField"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "keygen":
		if err := runKeygen(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "derive":
		if err := runDerive(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "hash":
		if err := runHash(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("ghostfield version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`ghostfield - HTML form anti-bot toolkit

Usage:
  ghostfield <command> [arguments]

Commands:
  keygen                 Generate a random 32-byte secret key (hex)
  derive <name>...       Derive the current wire ids for logical field names
  hash <value>...        Hash values the way the client handshake does
  version                Print version
  help                   Show this help

Options for derive:
  --secret <key>         Secret key (defaults to $GHOSTFIELD_SECRET)
  --at <RFC3339>         Derive at a specific instant instead of now
  --prev                 Also print the previous hour's ids

Examples:
  ghostfield keygen
  ghostfield derive --secret "$KEY" email message
  ghostfield derive --secret "$KEY" --at 2025-07-14T09:30:00Z email
  ghostfield hash "Mozilla/5.0"`)
}

func runKeygen() error {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(key))
	return nil
}

func runDerive(args []string) error {
	var (
		secret = os.Getenv("GHOSTFIELD_SECRET")
		at     = time.Now()
		prev   bool
		names  []string
	)

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--secret":
			i++
			if i >= len(args) {
				return fmt.Errorf("--secret requires a value")
			}
			secret = args[i]
		case "--at":
			i++
			if i >= len(args) {
				return fmt.Errorf("--at requires a value")
			}
			t, err := time.Parse(time.RFC3339, args[i])
			if err != nil {
				return fmt.Errorf("invalid --at value: %v", err)
			}
			at = t
		case "--prev":
			prev = true
		default:
			names = append(names, args[i])
		}
	}

	if len(names) == 0 {
		return fmt.Errorf("derive requires at least one field name")
	}
	if secret == "" {
		fmt.Fprintln(os.Stderr, "warning: empty secret key, wire ids are guessable")
	}

	buckets := []string{ghostfield.BucketAt(at)}
	if prev {
		if p := ghostfield.BucketAt(at.Add(-time.Hour)); p != buckets[0] {
			buckets = append(buckets, p)
		}
	}

	for _, name := range names {
		if !ghostfield.ValidFieldName(name) {
			return fmt.Errorf("invalid field name: %q", name)
		}
		for _, bucket := range buckets {
			fmt.Printf("%s\t%s\t%s\n", name, bucket, ghostfield.WireID(name, secret, bucket))
		}
	}
	return nil
}

func runHash(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("hash requires at least one value")
	}
	for _, v := range args {
		fmt.Printf("%s\t%s\n", ghostfield.Hash32(v), v)
	}
	return nil
}
