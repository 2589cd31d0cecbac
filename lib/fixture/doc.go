// Package fixture stores reference serializer output on disk and verifies
// later runs against it by digest. A fixture is a pair of files: the
// serialized text itself and a sidecar holding its xxhash-64 digest, so a
// mismatch can be detected without reading the (potentially large) text
// back into memory byte-by-byte comparisons.
package fixture
