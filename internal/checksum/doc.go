// Package checksum provides content hashing for tree manifests.
//
// Files are identified by the SHA-256 of their raw bytes. Directories are
// identified by Combine over their children's names and checksums, so two
// directories with the same contents always hash the same regardless of
// creation order.
//
// # Example Usage
//
//	calculator := checksum.New()
//	fileSum := calculator.Sum(contents)
//	dirSum := calculator.Combine("a.txt", fileSum)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
