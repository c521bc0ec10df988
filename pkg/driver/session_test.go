package driver

import (
	"bytes"
	"errors"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/raymyers/tacc/pkg/asmgen"
	"github.com/raymyers/tacc/pkg/lower"
	"github.com/raymyers/tacc/pkg/qbe"
	"github.com/raymyers/tacc/pkg/source"
	"github.com/raymyers/tacc/pkg/tacgen"
)

var _ = Describe("Session", func() {
	var s *Session

	BeforeEach(func() {
		s = NewSession(Options{})
	})

	It("should lower the round-trip program", func() {
		diags := s.Run("int a; int b; int c; c = a + b * 2;")

		Expect(diags).To(BeEmpty())
		Expect(s.Listing("tac").Lines()).To(Equal([]string{
			"t1 = b * 2",
			"t2 = a + t1",
			"c = t2",
		}))
		Expect(s.Listing("asm").Lines()).To(Equal([]string{
			"MOV R1, b",
			"MUL R1, 2",
			"MOV R2, a",
			"ADD R2, R1",
			"MOV c, R2",
		}))
	})

	It("should emit a single terminal line for a bare operand", func() {
		Expect(s.Lower(source.Assignment{Target: "x", Expr: "y", Line: 1})).To(Succeed())
		Expect(s.Listing("tac").Lines()).To(Equal([]string{"x = y"}))
		Expect(s.Listing("asm").Lines()).To(Equal([]string{"MOV x, y"}))
	})

	It("should number slots continuously across assignments", func() {
		s.Run("x = a * b;\ny = x + c;")
		Expect(s.Listing("tac").Lines()).To(Equal([]string{
			"t1 = a * b",
			"x = t1",
			"t2 = x + c",
			"y = t2",
		}))

		s.Run("z = y - 1;")
		Expect(s.Listing("tac").Lines()).To(ContainElement("t3 = y - 1"))
		Expect(s.Listing("asm").Lines()).To(ContainElement("SUB R3, 1"))
	})

	Context("with a malformed assignment", func() {
		It("should report it and keep going", func() {
			diags := s.Run("c = + b;\nd = e * f;")

			Expect(diags).To(HaveLen(1))
			Expect(diags[0].Assignment.Target).To(Equal("c"))
			Expect(diags[0].Assignment.Line).To(Equal(1))
			Expect(diags[0].Backend).To(BeEmpty())
			Expect(errors.Is(diags[0], lower.ErrInvalidExpression)).To(BeTrue())

			Expect(s.Listing("tac").Lines()).To(Equal([]string{"t1 = e * f", "d = t1"}))
			Expect(s.Listing("asm").Lines()).To(Equal([]string{"MOV R1, e", "MUL R1, f", "MOV d, R1"}))
		})

		It("should reject invalid characters", func() {
			err := s.Lower(source.Assignment{Target: "x", Expr: "a % b", Line: 3})

			var charErr *lower.CharError
			Expect(errors.As(err, &charErr)).To(BeTrue())
			Expect(charErr.Char).To(Equal('%'))
			Expect(s.Listing("tac").Len()).To(Equal(0))
			Expect(s.Diagnostics()).To(HaveLen(1))
		})

		It("should describe the assignment in the message", func() {
			err := s.Lower(source.Assignment{Target: "c", Expr: "+ b", Line: 2})
			Expect(err).To(MatchError(ContainSubstring("line 2: c: invalid expression")))
		})
	})

	It("should restart numbering after Reset", func() {
		s.Run("x = a * b; y = c;")
		s.Run("c = + b;")
		s.Reset()

		Expect(s.Listing("tac").Lines()).To(BeEmpty())
		Expect(s.Diagnostics()).To(BeEmpty())

		s.Run("x = a * b;")
		Expect(s.Listing("tac").Lines()).To(Equal([]string{"t1 = a * b", "x = t1"}))
	})

	It("should not share counters between sessions", func() {
		other := NewSession(Options{})
		s.Run("x = a + b;")
		other.Run("y = c + d;")
		Expect(other.Listing("tac").Lines()).To(Equal([]string{"t1 = c + d", "y = t1"}))
	})

	It("should return copies of listings", func() {
		s.Run("x = y;")
		lines := s.Listing("tac").Lines()
		lines[0] = "mutated"
		Expect(s.Listing("tac").Lines()).To(Equal([]string{"x = y"}))
	})

	It("should return nil for an unknown backend", func() {
		Expect(s.Listing("llvm")).To(BeNil())
	})

	It("should use the configured prefixes", func() {
		s = NewSession(Options{Backends: []Backend{tacgen.NewBackend("tmp"), asmgen.NewBackend("r")}})
		s.Run("x = a + b;")
		Expect(s.Listing("tac").Lines()).To(Equal([]string{"tmp1 = a + b", "x = tmp1"}))
		Expect(s.Listing("asm").Lines()).To(Equal([]string{"MOV r1, a", "ADD r1, b", "MOV x, r1"}))
	})

	Context("with the QBE backend", func() {
		BeforeEach(func() {
			s = NewSession(Options{Backends: []Backend{tacgen.NewBackend(""), qbe.NewBackend("")}})
		})

		It("should skip what QBE cannot express without touching TAC", func() {
			diags := s.Run("x = (a + b) * c; y = a - b;")

			Expect(diags).To(HaveLen(1))
			Expect(diags[0].Backend).To(Equal("qbe"))
			Expect(errors.Is(diags[0], qbe.ErrUnsupported)).To(BeTrue())

			Expect(s.Listing("tac").Lines()).To(Equal([]string{
				"t1 = ) * c",
				"t2 = a + b",
				"x = ( t2 t1",
				"t3 = a - b",
				"y = t3",
			}))
			Expect(s.Listing("qbe").Lines()).To(Equal([]string{
				"%.t1 =w sub %a, %b",
				"%y =w copy %.t1",
			}))
		})
	})

	It("should log skipped assignments", func() {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		s = NewSession(Options{Logger: logger})

		s.Run("c = + b; d = e;")

		Expect(buf.String()).To(ContainSubstring("skipping assignment"))
		Expect(buf.String()).To(ContainSubstring("lowered assignment"))
		Expect(buf.String()).To(ContainSubstring("target=d"))
	})
})
