package hashio

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"hash"
	"io"
	"os"
)

// Checksums holds the hex encoded digests of a file, as expected by the
// depot's X-Checksum-* upload headers.
type Checksums struct {
	MD5    string
	SHA1   string
	SHA256 string
}

// SHA256 hashes the given file with crypto.SHA256 and returns the checksum as a
// base-16 (hex) string.
func SHA256(filename string) (string, error) {
	return hashFile(filename, sha256.New())
}

// SHA1 hashes the given file with crypto.SHA1 and returns the checksum as a
// base-16 (hex) string.
func SHA1(filename string) (string, error) {
	return hashFile(filename, sha1.New())
}

// MD5 hashes the given file with crypto.MD5 and returns the checksum as a
// base-16 (hex) string.
func MD5(filename string) (string, error) {
	return hashFile(filename, md5.New())
}

// All computes every checksum the depot accepts in one pass over the file.
func All(filename string) (Checksums, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Checksums{}, err
	}
	defer file.Close()

	m := md5.New()
	s1 := sha1.New()
	s256 := sha256.New()
	if _, err := io.Copy(io.MultiWriter(m, s1, s256), file); err != nil {
		return Checksums{}, err
	}

	return Checksums{
		MD5:    fmt.Sprintf("%x", m.Sum(nil)),
		SHA1:   fmt.Sprintf("%x", s1.Sum(nil)),
		SHA256: fmt.Sprintf("%x", s256.Sum(nil)),
	}, nil
}

func hashFile(filename string, h hash.Hash) (string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := io.Copy(h, file); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
