// Package hashing provides MD5 checksum calculation while streaming data.
//
// The seed loader reads the airport dataset through a ChecksumReaderProxy so
// the checksum of the data that was actually loaded can be logged at startup
// and compared between deployments.
//
//	proxy := hashing.NewMD5ReaderProxy(file)
//	airports, err := decode(proxy)
//	checksum, _ := proxy.GetChecksum()
package hashing
