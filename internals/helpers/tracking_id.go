package helper

import (
	"crypto/rand"
	"log"
	mrand "math/rand"
)

const (
	TrackingIDLength   = 20
	trackingIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// GenerateTrackingID menghasilkan id pelacakan 20 karakter alfanumerik.
// Dipakai sebagai primary key survey_redirects, jadi harus cukup acak
// supaya tidak pernah tabrakan.
func GenerateTrackingID() string {
	b := make([]byte, TrackingIDLength)
	if _, err := rand.Read(b); err != nil {
		// fallback non-crypto — hanya untuk tooling lokal, jangan sampai kejadian di server
		log.Println("[WARN] crypto/rand gagal, fallback ke math/rand:", err)
		for i := range b {
			b[i] = trackingIDAlphabet[mrand.Intn(len(trackingIDAlphabet))]
		}
		return string(b)
	}
	for i := range b {
		b[i] = trackingIDAlphabet[int(b[i])%len(trackingIDAlphabet)]
	}
	return string(b)
}

// LooksLikeTrackingID: persis 20 karakter alfanumerik (format GenerateTrackingID).
func LooksLikeTrackingID(s string) bool {
	if len(s) != TrackingIDLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
