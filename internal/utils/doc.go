// Package utils provides small helpers shared by the chat client packages:
// the preconfigured resty HTTP client, message id generation, local JWT
// expiry inspection and image data URL encoding.
package utils
