package abi

// Message receipt packs two fields into one non-negative trap result:
// the sender pid in bits 16-31 and the payload length in bits 0-15.
// The split caps both fields at 65535; that is a boundary constraint,
// so the kernel must reject senders and payloads that do not fit.
const (
	MaxSender = 0xFFFF
	MaxMsgLen = 0xFFFF
)

// Receipt is the unpacked form of a message-receipt result.
type Receipt struct {
	Sender uint32 // pid of the sending process
	Len    int    // payload bytes copied into the caller's buffer
}

// PackReceipt encodes a receipt into a single trap result word.
// Callers must have validated the 16-bit field limits.
func PackReceipt(sender uint32, n int) int {
	return int(sender)<<16 | (n & MaxMsgLen)
}

// UnpackReceipt splits a non-negative receive result into its fields.
func UnpackReceipt(w int) Receipt {
	return Receipt{
		Sender: uint32(w >> 16),
		Len:    w & MaxMsgLen,
	}
}
