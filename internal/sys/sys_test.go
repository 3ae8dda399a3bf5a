package sys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mtos-project/userland/internal/abi"
	"github.com/mtos-project/userland/internal/sys"
	"github.com/mtos-project/userland/internal/trap"
)

// stubKernel records frames and answers through reply, defaulting to
// success.
type stubKernel struct {
	frames []trap.Frame
	reply  func(trap.Frame) int
}

func (s *stubKernel) Trap(f trap.Frame) int {
	s.frames = append(s.frames, f)
	if s.reply != nil {
		return s.reply(f)
	}
	return 0
}

func install(t *testing.T, h trap.Handler) {
	t.Helper()
	trap.Reset()
	trap.Install(h)
	t.Cleanup(trap.Reset)
}

func TestPrintSuccess(t *testing.T) {
	s := &stubKernel{}
	install(t, s)

	require.NoError(t, sys.Print([]byte("hello")))
	require.Len(t, s.frames, 1)
	f := s.frames[0]
	assert.Equal(t, abi.SysPrint, f.NR)
	assert.Equal(t, 2, f.NArgs)
	assert.NotZero(t, f.Args[0])
	assert.Equal(t, uintptr(5), f.Args[1])
}

func TestPrintFailure(t *testing.T) {
	s := &stubKernel{reply: func(trap.Frame) int { return abi.EIO.Code() }}
	install(t, s)

	err := sys.Print([]byte("x"))
	require.Error(t, err)
	assert.ErrorIs(t, err, abi.EIO)
}

func TestPrintNeverFabricatesFailure(t *testing.T) {
	// Any non-negative result is success, whatever its magnitude.
	for _, r := range []int{0, 1, 7, 1 << 20} {
		s := &stubKernel{reply: func(trap.Frame) int { return r }}
		install(t, s)
		assert.NoError(t, sys.Print([]byte("ok")))
	}
}

func TestPrintlnIssuesTwoTraps(t *testing.T) {
	s := &stubKernel{}
	install(t, s)

	require.NoError(t, sys.PrintlnString("line"))
	require.Len(t, s.frames, 2)
	assert.Equal(t, abi.SysPrint, s.frames[0].NR)
	assert.Equal(t, abi.SysPrint, s.frames[1].NR)
	assert.Equal(t, uintptr(4), s.frames[0].Args[1])
	assert.Equal(t, uintptr(1), s.frames[1].Args[1], "second trap carries the lone newline")
}

func TestPrintlnReportsFirstFailure(t *testing.T) {
	calls := 0
	s := &stubKernel{reply: func(trap.Frame) int {
		calls++
		if calls == 1 {
			return abi.EIO.Code()
		}
		return 0
	}}
	install(t, s)

	err := sys.PrintlnString("line")
	assert.ErrorIs(t, err, abi.EIO)
	assert.Equal(t, 2, calls, "newline transmission is still attempted")
}

func TestGetpid(t *testing.T) {
	s := &stubKernel{reply: func(trap.Frame) int { return 1234 }}
	install(t, s)

	assert.Equal(t, uint32(1234), sys.Getpid())
	require.Len(t, s.frames, 1)
	assert.Equal(t, abi.SysGetPid, s.frames[0].NR)
	assert.Equal(t, 0, s.frames[0].NArgs)
}

func TestSleep(t *testing.T) {
	s := &stubKernel{}
	install(t, s)

	require.NoError(t, sys.Sleep(250))
	require.Len(t, s.frames, 1)
	assert.Equal(t, abi.SysSleep, s.frames[0].NR)
	assert.Equal(t, uintptr(250), s.frames[0].Args[0])
}

// mockKernel drives testify's mock machinery for expectation-style
// tests.
type mockKernel struct {
	mock.Mock
}

func (m *mockKernel) Trap(f trap.Frame) int {
	args := m.Called(f)
	return args.Int(0)
}

func TestSleepErrorPassthrough(t *testing.T) {
	m := new(mockKernel)
	m.On("Trap", mock.MatchedBy(func(f trap.Frame) bool {
		return f.NR == abi.SysSleep && f.Args[0] == 100
	})).Return(abi.EAGAIN.Code()).Once()
	install(t, m)

	assert.ErrorIs(t, sys.Sleep(100), abi.EAGAIN)
	m.AssertExpectations(t)
}

func TestMallocSuccess(t *testing.T) {
	s := &stubKernel{reply: func(trap.Frame) int { return 0x1000 }}
	install(t, s)

	addr, err := sys.Malloc(256)
	require.NoError(t, err)
	assert.Equal(t, uintptr(0x1000), addr)
	require.Len(t, s.frames, 1)
	assert.Equal(t, abi.SysMalloc, s.frames[0].NR)
	assert.Equal(t, uintptr(256), s.frames[0].Args[0])
}

func TestMallocFailure(t *testing.T) {
	s := &stubKernel{reply: func(trap.Frame) int { return -5 }}
	install(t, s)

	addr, err := sys.Malloc(256)
	require.Error(t, err)
	assert.Zero(t, addr)
	var errno abi.Errno
	require.ErrorAs(t, err, &errno)
	assert.Equal(t, -5, errno.Code())
}

func TestMallocZeroIsFailure(t *testing.T) {
	// A null handle is not a region; zero must not look like success.
	s := &stubKernel{reply: func(trap.Frame) int { return 0 }}
	install(t, s)

	addr, err := sys.Malloc(256)
	require.Error(t, err)
	assert.Zero(t, addr)
}

func TestFree(t *testing.T) {
	s := &stubKernel{}
	install(t, s)

	require.NoError(t, sys.Free(0x1000))
	require.Len(t, s.frames, 1)
	assert.Equal(t, abi.SysFree, s.frames[0].NR)
	assert.Equal(t, uintptr(0x1000), s.frames[0].Args[0])
}

func TestMallocFreeScenario(t *testing.T) {
	s := &stubKernel{reply: func(f trap.Frame) int {
		if f.NR == abi.SysMalloc {
			return 0x1000
		}
		return 0
	}}
	install(t, s)

	addr, err := sys.Malloc(256)
	require.NoError(t, err)
	require.Equal(t, uintptr(0x1000), addr)
	require.NoError(t, sys.Free(addr))
}

func TestSend(t *testing.T) {
	s := &stubKernel{}
	install(t, s)

	msg := []byte("ping")
	require.NoError(t, sys.Send(9, msg))
	require.Len(t, s.frames, 1)
	f := s.frames[0]
	assert.Equal(t, abi.SysSendMessage, f.NR)
	assert.Equal(t, 3, f.NArgs)
	assert.Equal(t, uintptr(9), f.Args[0])
	assert.NotZero(t, f.Args[1])
	assert.Equal(t, uintptr(4), f.Args[2])
}

func TestReceiveUnpacksReceipt(t *testing.T) {
	s := &stubKernel{reply: func(trap.Frame) int {
		return abi.PackReceipt(7, 5)
	}}
	install(t, s)

	buf := make([]byte, 64)
	r, err := sys.Receive(buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), r.Sender)
	assert.Equal(t, 5, r.Len)

	f := s.frames[0]
	assert.Equal(t, abi.SysReceiveMessage, f.NR)
	assert.Equal(t, uintptr(64), f.Args[1])
}

func TestReceiveFailure(t *testing.T) {
	s := &stubKernel{reply: func(trap.Frame) int { return abi.EAGAIN.Code() }}
	install(t, s)

	_, err := sys.Receive(make([]byte, 8))
	assert.ErrorIs(t, err, abi.EAGAIN)
}

// exitCode is the sentinel a terminal stub panics with, modeling a
// kernel that retires the process instead of returning.
type exitCode int

func TestExitIsTerminal(t *testing.T) {
	s := &stubKernel{reply: func(f trap.Frame) int {
		if f.NR == abi.SysExit {
			panic(exitCode(int(f.Args[0])))
		}
		t.Fatalf("trap %v issued after exit", f.NR)
		return 0
	}}
	install(t, s)

	assert.PanicsWithValue(t, exitCode(3), func() {
		sys.Exit(3)
		_ = sys.Getpid() // must never run
	})
}

func TestExitUnreachableMarker(t *testing.T) {
	// A collaborator that breaks the never-returns promise must not
	// let control continue past Exit.
	s := &stubKernel{}
	install(t, s)

	assert.PanicsWithValue(t, "sys: exit returned", func() { sys.Exit(0) })
}

func TestNegativeExitCodeCrossesBoundary(t *testing.T) {
	var got int
	s := &stubKernel{reply: func(f trap.Frame) int {
		if f.NR == abi.SysExit {
			got = int(f.Args[0])
			panic(exitCode(got))
		}
		return 0
	}}
	install(t, s)

	assert.Panics(t, func() { sys.Exit(-1) })
	assert.Equal(t, -1, got, "two's complement survives the word round trip")
}
