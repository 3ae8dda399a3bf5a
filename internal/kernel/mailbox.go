package kernel

import (
	"sync"

	"github.com/mtos-project/userland/internal/abi"
	"github.com/mtos-project/userland/internal/trap"
)

// maxMessageSize bounds one IPC payload. Smaller than the 16-bit
// length field on purpose: the field caps what a receipt can report,
// the kernel caps what it will queue.
const maxMessageSize = 4096

type message struct {
	sender  uint32
	payload []byte
}

// mailboxes holds one bounded queue per destination pid, created on
// first use. Send never blocks: a full queue is an error. Receive
// blocks until a message is available.
type mailboxes struct {
	mu    sync.Mutex
	cap   int
	boxes map[uint32]chan message
}

func newMailboxes(capacity int) *mailboxes {
	if capacity <= 0 {
		capacity = 1
	}
	return &mailboxes{
		cap:   capacity,
		boxes: make(map[uint32]chan message),
	}
}

func (m *mailboxes) box(pid uint32) chan message {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch, ok := m.boxes[pid]
	if !ok {
		ch = make(chan message, m.cap)
		m.boxes[pid] = ch
	}
	return ch
}

func (m *mailboxes) depth() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, ch := range m.boxes {
		n += len(ch)
	}
	return n
}

// syssend queues a copy of the caller's payload for the destination.
func (k *Kernel) syssend(f trap.Frame) int {
	dest := uint32(f.Args[0])
	if dest > abi.MaxSender {
		return abi.EINVAL.Code()
	}
	if f.Args[2] > maxMessageSize {
		return abi.EMSGSIZE.Code()
	}
	b, errno := userBytes(f.Args[1], f.Args[2])
	if errno != 0 {
		return errno.Code()
	}

	// Copy out: the caller's buffer is only valid for this trap.
	msg := message{sender: k.pid, payload: append([]byte(nil), b...)}

	select {
	case k.mail.box(dest) <- msg:
	default:
		return abi.EAGAIN.Code()
	}
	k.metrics.MessagesSent.Inc()
	k.metrics.MailboxDepth.Set(float64(k.mail.depth()))
	return 0
}

// sysreceive blocks until a message arrives for the calling process,
// copies as much of the payload as the caller's buffer holds, and
// packs (sender, copied length) into the result word.
func (k *Kernel) sysreceive(f trap.Frame) int {
	buf, errno := userBytes(f.Args[0], f.Args[1])
	if errno != 0 {
		return errno.Code()
	}

	msg := <-k.mail.box(k.pid)
	k.metrics.MailboxDepth.Set(float64(k.mail.depth()))

	n := copy(buf, msg.payload)
	return abi.PackReceipt(msg.sender, n)
}
