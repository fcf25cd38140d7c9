package rpn

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// hostCodeRet is the x86-64 RET opcode used to fill a freshly reset
// page, so that a stray jump anywhere in it returns cleanly instead of
// running off into whatever garbage follows.
const hostCodeRet byte = 0xC3

// HostCode is one page of anonymous, read-write-execute memory holding
// the machine code a Translator emits. golang.org/x/sys/unix backs the
// mapping directly rather than through github.com/edsrzf/mmap-go, which
// targets file-backed mappings and has no anonymous+PROT_EXEC path.
type HostCode struct {
	mem    []byte
	cursor int
}

func NewHostCode() (*HostCode, error) {
	size := unix.Getpagesize()
	mem, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE|unix.PROT_EXEC,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocFailed, err)
	}
	h := &HostCode{mem: mem}
	h.Reset()
	return h, nil
}

// Close releases the underlying page. Safe to call once a Calculator is
// done with its HostCode; calling it more than once is a no-op.
func (h *HostCode) Close() error {
	if h.mem == nil {
		return nil
	}
	mem := h.mem
	h.mem = nil
	h.cursor = 0
	return unix.Munmap(mem)
}

// Reset fills the page with RET and rewinds the write cursor, exactly
// like ByteCode.Reset but over executable memory.
func (h *HostCode) Reset() {
	for i := range h.mem {
		h.mem[i] = hostCodeRet
	}
	h.cursor = 0
}

// Begin returns the address of the first byte of the page; End returns
// the address just past the last byte written since Reset. Together
// they describe the [begin, end) view a BasicBlock executes.
func (h *HostCode) Begin() uintptr {
	if len(h.mem) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&h.mem[0]))
}

func (h *HostCode) End() uintptr {
	begin := h.Begin()
	if begin == 0 {
		return 0
	}
	return begin + uintptr(h.cursor)
}

func (h *HostCode) writeByte(v byte) error {
	if h.cursor >= len(h.mem) {
		return ErrHostcodeFull
	}
	h.mem[h.cursor] = v
	h.cursor++
	return nil
}

func (h *HostCode) writeBytes(bs ...byte) error {
	for _, v := range bs {
		if err := h.writeByte(v); err != nil {
			return err
		}
	}
	return nil
}

func (h *HostCode) emitQuad(v uint64) error {
	for i := 0; i < 8; i++ {
		if err := h.writeByte(byte(v >> (8 * uint(i)))); err != nil {
			return err
		}
	}
	return nil
}

// PushRbp emits `push rbp`.
func (h *HostCode) PushRbp() error { return h.writeByte(0x55) }

// MovRbpRsp emits `mov rbp, rsp`.
func (h *HostCode) MovRbpRsp() error { return h.writeBytes(0x48, 0x89, 0xE5) }

// MovRspRbp emits `mov rsp, rbp`.
func (h *HostCode) MovRspRbp() error { return h.writeBytes(0x48, 0x89, 0xEC) }

// PopRbp emits `pop rbp`.
func (h *HostCode) PopRbp() error { return h.writeByte(0x5D) }

// Ret emits `ret`.
func (h *HostCode) Ret() error { return h.writeByte(0xC3) }

// MovRaxImm64 emits `mov rax, imm64`.
func (h *HostCode) MovRaxImm64(v uint64) error {
	if err := h.writeBytes(0x48, 0xB8); err != nil {
		return err
	}
	return h.emitQuad(v)
}

// MovRdiImm64 emits `mov rdi, imm64`.
func (h *HostCode) MovRdiImm64(v uint64) error {
	if err := h.writeBytes(0x48, 0xBF); err != nil {
		return err
	}
	return h.emitQuad(v)
}

// MovRsiImm64 emits `mov rsi, imm64`.
func (h *HostCode) MovRsiImm64(v uint64) error {
	if err := h.writeBytes(0x48, 0xBE); err != nil {
		return err
	}
	return h.emitQuad(v)
}

// CallRax emits `call rax`.
func (h *HostCode) CallRax() error { return h.writeBytes(0xFF, 0xD0) }
