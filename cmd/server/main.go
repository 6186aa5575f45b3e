package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"log"
	"os"
	"strconv"

	"noisy/internal/server"
)

const (
	defaultAddr = ":2222"
	hostKeyPath = "host_key"
	cacheSize   = 64
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	// Generate host key if it doesn't exist
	if err := ensureHostKey(hostKeyPath); err != nil {
		log.Fatalf("Host key error: %v", err)
	}

	var seed int64
	if s := os.Getenv("NOISY_SEED"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			log.Fatalf("Invalid NOISY_SEED %q: %v", s, err)
		}
		seed = v
	}

	gens, err := server.NewGenCache(cacheSize)
	if err != nil {
		log.Fatalf("Generator cache: %v", err)
	}

	// Start SSH server (blocks)
	listenAddr := defaultAddr
	if port := os.Getenv("PORT"); port != "" {
		listenAddr = ":" + port
	}
	sshServer := server.NewSSHServer(listenAddr, hostKeyPath, seed, gens)
	log.Printf("Starting noise preview server, connect with: ssh -p %s simplex@localhost", listenAddr[1:])
	if err := sshServer.Start(); err != nil {
		log.Fatalf("SSH server error: %v", err)
	}
}

func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // key already exists
	}

	log.Println("Generating new host key...")
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	pemBlock := &pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: keyBytes,
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, pemBlock)
}
