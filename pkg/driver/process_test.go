package driver

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/raymyers/tacc/pkg/config"
	"github.com/raymyers/tacc/pkg/lexer"
	"github.com/raymyers/tacc/pkg/symtab"
)

var _ = Describe("Process", func() {
	const program = "int a = 3, b; // operands\nint c;\nc = a + b * 2;\n"

	var cfg *config.Config

	BeforeEach(func() {
		cfg = config.Default()
	})

	It("should run every default stage", func() {
		res, err := Process(program, cfg, nil)
		Expect(err).NotTo(HaveOccurred())

		Expect(res.Tokens).NotTo(BeEmpty())
		Expect(res.Tokens[0]).To(Equal(lexer.Token{Category: lexer.Keyword, Literal: "int", Pos: 0, Line: 1, Column: 1}))
		Expect(res.LexErrors).To(BeEmpty())

		Expect(res.Symbols).To(Equal(symtab.Table{
			{Name: "a", Type: "int", Value: "3"},
			{Name: "b", Type: "int", Value: symtab.Uninitialized},
			{Name: "c", Type: "int", Value: symtab.Uninitialized},
		}))

		Expect(res.Listing("tac").Lines()).To(Equal([]string{"t1 = b * 2", "t2 = a + t1", "c = t2"}))
		Expect(res.Listing("asm").Len()).To(Equal(5))
		Expect(res.Listing("qbe")).To(BeNil())
		Expect(res.QBE).To(BeNil())
	})

	It("should only run the selected stages", func() {
		cfg.Stages = []string{config.StageTAC}
		res, err := Process(program, cfg, nil)
		Expect(err).NotTo(HaveOccurred())

		Expect(res.Tokens).To(BeNil())
		Expect(res.Symbols).To(BeNil())
		Expect(res.Listings).To(HaveLen(1))
		Expect(res.Listings[0].Backend).To(Equal("tac"))
	})

	It("should build a QBE function seeded from the symbol table", func() {
		cfg.Stages = []string{config.StageQBE}
		res, err := Process(program, cfg, nil)
		Expect(err).NotTo(HaveOccurred())

		Expect(res.QBE).NotTo(BeNil())
		Expect(res.QBE.String()).To(Equal(`export function w $main() {
@start
	%b =w copy 0
	%a =w copy 3
	%.t1 =w mul %b, 2
	%.t2 =w add %a, %.t1
	%c =w copy %.t2
	ret %c
}
`))
		Expect(res.Native).To(BeEmpty())
	})

	It("should report unexpected characters and keep going", func() {
		res, err := Process("x = 1; @\ny = x;", cfg, nil)
		Expect(err).NotTo(HaveOccurred())

		Expect(res.LexErrors).To(HaveLen(1))
		Expect(res.LexErrors[0].Line).To(Equal(1))
		Expect(res.Listing("tac").Lines()).To(Equal([]string{"x = 1", "y = x"}))
	})

	It("should do nothing when no stage is selected", func() {
		cfg.Stages = nil
		res, err := Process(program, cfg, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Listings).To(BeNil())
	})
})
