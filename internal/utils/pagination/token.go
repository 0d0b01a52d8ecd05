package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
)

// Tokens travel in query strings, so they use the URL-safe alphabet.
var encoding = base64.RawURLEncoding

// EncodeToken creates an opaque token pointing just past the transaction with
// the given date and ID in a newest-first listing.
func EncodeToken(date civil.Date, transactionID string) string {
	return EncodeMultiFieldToken(date.String(), transactionID)
}

// DecodeToken parses a token created by EncodeToken.
func DecodeToken(token string) (civil.Date, string, error) {
	decodedBytes, err := encoding.DecodeString(token)
	if err != nil {
		return civil.Date{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	// The ID is everything after the date, so it may itself contain "|".
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return civil.Date{}, "", fmt.Errorf("invalid pagination token format (split)")
	}

	date, err := civil.ParseDate(parts[0])
	if err != nil {
		return civil.Date{}, "", fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}

	return date, parts[1], nil
}

// EncodeMultiFieldToken creates a token with any number of string fields.
func EncodeMultiFieldToken(fields ...string) string {
	return encoding.EncodeToString([]byte(strings.Join(fields, "|")))
}

// DecodeMultiFieldToken decodes a token into its component fields.
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := encoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}
