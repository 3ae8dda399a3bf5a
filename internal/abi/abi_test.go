package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSysnoNames(t *testing.T) {
	assert.Equal(t, "exit", SysExit.Name())
	assert.Equal(t, "print", SysPrint.Name())
	assert.Equal(t, "getpid", SysGetPid.Name())
	assert.Equal(t, "receive_message", SysReceiveMessage.Name())
	assert.Equal(t, "invalid", Sysno(10).Name())
	assert.Equal(t, "invalid", Sysno(255).Name())
}

func TestSysnoValuesFrozen(t *testing.T) {
	// The wire numbering is compiled into the kernel independently;
	// any renumbering here is a boundary break.
	frozen := map[Sysno]uint32{
		SysExit: 0, SysPrint: 1, SysRead: 2, SysWrite: 3,
		SysGetPid: 4, SysSleep: 5, SysMalloc: 6, SysFree: 7,
		SysSendMessage: 8, SysReceiveMessage: 9,
	}
	for s, want := range frozen {
		assert.Equal(t, want, uint32(s))
	}
	assert.Equal(t, 10, NumSys)
}

func TestErrno(t *testing.T) {
	assert.Equal(t, "out of memory", ENOMEM.Error())
	assert.Equal(t, "invalid argument", EINVAL.Error())
	assert.Equal(t, -12, ENOMEM.Code())
	assert.Equal(t, "errno -99", Errno(-99).Error())

	var err error = ENOMEM
	assert.ErrorIs(t, err, ENOMEM)
}

func TestReceiptRoundTrip(t *testing.T) {
	cases := []struct {
		sender uint32
		n      int
	}{
		{0, 0},
		{0, 1},
		{1, 0},
		{7, 5},
		{1234, 4321},
		{MaxSender, MaxMsgLen},
		{MaxSender, 0},
		{0, MaxMsgLen},
	}
	for _, tc := range cases {
		w := PackReceipt(tc.sender, tc.n)
		assert.GreaterOrEqual(t, w, 0, "packed word must be non-negative")
		r := UnpackReceipt(w)
		assert.Equal(t, tc.sender, r.Sender)
		assert.Equal(t, tc.n, r.Len)
	}
}

func TestReceiptSweep(t *testing.T) {
	for sender := uint32(0); sender <= MaxSender; sender += 127 {
		for n := 0; n <= MaxMsgLen; n += 251 {
			r := UnpackReceipt(PackReceipt(sender, n))
			if r.Sender != sender || r.Len != n {
				t.Fatalf("round trip (%d, %d) gave (%d, %d)", sender, n, r.Sender, r.Len)
			}
		}
	}
}
