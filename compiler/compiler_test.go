package compiler_test

import (
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tapesim/compiler"
	"github.com/sarchlab/tapesim/instr"
	"github.com/sarchlab/tapesim/util/progen"
)

const helloWorld = `+++++++++++[>++++++>+++++++++>++++++++>++++>+++>+<<<<<<-]>+++
+++.>++.+++++++..+++.>>.>-.<<-.<.+++.------.--------.>>>+.>-.
`

func kinds(p instr.Program) []instr.Kind {
	ks := make([]instr.Kind, len(p))
	for i, inst := range p {
		ks[i] = inst.Kind
	}
	return ks
}

// expectPaired checks that every bracket targets its partner and that the
// partner targets it back.
func expectPaired(p instr.Program) {
	for i, inst := range p {
		switch inst.Kind {
		case instr.JumpForward:
			Expect(p[inst.Target].Kind).To(Equal(instr.JumpBackward))
			Expect(p[inst.Target].Target).To(Equal(i))
			Expect(inst.Target).To(BeNumerically(">", i))
		case instr.JumpBackward:
			Expect(p[inst.Target].Kind).To(Equal(instr.JumpForward))
			Expect(p[inst.Target].Target).To(Equal(i))
			Expect(inst.Target).To(BeNumerically("<", i))
		default:
			Expect(inst.Target).To(Equal(instr.NoTarget))
		}
	}
}

func syntaxErrorAt(err error) instr.Pos {
	var se *compiler.SyntaxError
	ExpectWithOffset(1, errors.As(err, &se)).To(BeTrue())
	return se.Pos
}

var _ = Describe("Compile", func() {
	It("should yield an empty program for comment-only source", func() {
		for _, src := range []string{"", "hello world", " \n\r\n\t", "0123456789abc"} {
			p, err := compiler.Compile(src)
			Expect(err).NotTo(HaveOccurred())
			Expect(p).To(BeEmpty())
		}
	})

	It("should drop comments and keep program order", func() {
		p, err := compiler.Compile("a+b>c.d,e<f-")
		Expect(err).NotTo(HaveOccurred())
		Expect(kinds(p)).To(Equal([]instr.Kind{
			instr.Increment, instr.MoveRight, instr.Output,
			instr.Input, instr.MoveLeft, instr.Decrement,
		}))
	})

	It("should resolve a simple loop", func() {
		p, err := compiler.Compile("+[-]")
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(HaveLen(4))
		Expect(p[1].Target).To(Equal(3))
		Expect(p[3].Target).To(Equal(1))
	})

	It("should resolve nested and sibling loops", func() {
		p, err := compiler.Compile("[[]][[[-]+]]")
		Expect(err).NotTo(HaveOccurred())
		Expect(p[0].Target).To(Equal(3))
		Expect(p[1].Target).To(Equal(2))
		Expect(p[4].Target).To(Equal(11))
		Expect(p[5].Target).To(Equal(10))
		Expect(p[6].Target).To(Equal(8))
		expectPaired(p)
	})

	It("should pair brackets at any nesting depth", func() {
		for depth := 1; depth <= 64; depth++ {
			src := strings.Repeat("[+", depth) + strings.Repeat("-]", depth)
			p, err := compiler.Compile(src)
			Expect(err).NotTo(HaveOccurred())
			Expect(p).To(HaveLen(4 * depth))
			Expect(p[0].Target).To(Equal(len(p) - 1))
			expectPaired(p)
		}
	})

	It("should record source positions", func() {
		p, err := compiler.Compile("x+\n +")
		Expect(err).NotTo(HaveOccurred())
		Expect(p[0].Pos).To(Equal(instr.Pos{Line: 1, Column: 2}))
		Expect(p[1].Pos).To(Equal(instr.Pos{Line: 2, Column: 2}))
	})

	It("should compile the hello world program", func() {
		p, err := compiler.Compile(helloWorld)
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(HaveLen(122))
		Expect(p[11].Kind).To(Equal(instr.JumpForward))
		Expect(p[11].Target).To(Equal(56))
		expectPaired(p)
	})

	It("should be a pure function of the source", func() {
		a, err := compiler.Compile(helloWorld)
		Expect(err).NotTo(HaveOccurred())
		b, err := compiler.Compile(helloWorld)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Equal(b)).To(BeTrue())
		Expect(a).To(Equal(b))
	})

	Context("when a close bracket is unmatched", func() {
		It("should fail at the bracket position", func() {
			_, err := compiler.Compile("ab]")
			Expect(err).To(MatchError(compiler.ErrUnmatchedClose))
			Expect(syntaxErrorAt(err)).To(Equal(instr.Pos{Line: 1, Column: 3}))
			Expect(err.Error()).To(Equal("unmatched close bracket at (1, 3)"))
		})

		It("should stop at the first unmatched close", func() {
			_, err := compiler.Compile("[]]\n]")
			Expect(syntaxErrorAt(err)).To(Equal(instr.Pos{Line: 1, Column: 3}))
		})

		It("should report line and column after a line feed", func() {
			_, err := compiler.Compile("+++\n  ]")
			Expect(syntaxErrorAt(err)).To(Equal(instr.Pos{Line: 2, Column: 3}))
		})

		It("should count CRLF as a single line break", func() {
			_, err := compiler.Compile("+\r\n+\r\n]")
			Expect(syntaxErrorAt(err)).To(Equal(instr.Pos{Line: 3, Column: 1}))
		})

		It("should count a lone CR as a line break", func() {
			_, err := compiler.Compile("+\r]")
			Expect(syntaxErrorAt(err)).To(Equal(instr.Pos{Line: 2, Column: 1}))
		})

		It("should count blank lines", func() {
			_, err := compiler.Compile("\n\n\n]")
			Expect(syntaxErrorAt(err)).To(Equal(instr.Pos{Line: 4, Column: 1}))
		})

		It("should give a multi-byte comment character one column", func() {
			_, err := compiler.Compile("é]")
			Expect(syntaxErrorAt(err)).To(Equal(instr.Pos{Line: 1, Column: 2}))

			_, err = compiler.Compile("// 日本 ]")
			Expect(syntaxErrorAt(err)).To(Equal(instr.Pos{Line: 1, Column: 7}))
		})

		It("should keep counting lines after non-ASCII comments", func() {
			_, err := compiler.Compile("naïve\r\n日本語 +]")
			Expect(syntaxErrorAt(err)).To(Equal(instr.Pos{Line: 2, Column: 6}))
		})

		It("should give an invalid UTF-8 byte one column", func() {
			_, err := compiler.Compile("\xff\xfe]")
			Expect(syntaxErrorAt(err)).To(Equal(instr.Pos{Line: 1, Column: 3}))
		})
	})

	Context("when open brackets are unmatched", func() {
		It("should fail with an unmatched open error", func() {
			_, err := compiler.Compile("+[")
			Expect(err).To(MatchError(compiler.ErrUnmatchedOpen))
			Expect(syntaxErrorAt(err)).To(Equal(instr.Pos{Line: 1, Column: 2}))
		})

		It("should report every open bracket, innermost first", func() {
			_, err := compiler.Compile("[[\n[]")

			var errs compiler.SyntaxErrors
			Expect(errors.As(err, &errs)).To(BeTrue())
			Expect(errs).To(HaveLen(2))
			Expect(errs[0].Pos).To(Equal(instr.Pos{Line: 1, Column: 2}))
			Expect(errs[1].Pos).To(Equal(instr.Pos{Line: 1, Column: 1}))
			Expect(syntaxErrorAt(err)).To(Equal(instr.Pos{Line: 1, Column: 2}))
			Expect(err.Error()).To(Equal(
				"unmatched open bracket at (1, 2); unmatched open bracket at (1, 1)"))
		})
	})
})

var _ = Describe("MustCompile", func() {
	It("should return the program", func() {
		Expect(compiler.MustCompile("+.")).To(HaveLen(2))
	})

	It("should panic on a syntax error", func() {
		Expect(func() { compiler.MustCompile("]") }).To(Panic())
	})
})

var _ = Describe("Compile on generated sources", func() {
	It("should yield an empty program for any comment-only source", func() {
		gen := progen.MakeCommentGen(1, 64)
		for i := 0; i < 200; i++ {
			p, err := compiler.Compile(gen())
			Expect(err).NotTo(HaveOccurred())
			Expect(p).To(BeEmpty())
		}
	})

	It("should pair every bracket of deeply nested loops", func() {
		gen := progen.MakeNestedGen()
		for depth := 1; depth <= 200; depth++ {
			p, err := compiler.Compile(gen())
			Expect(err).NotTo(HaveOccurred())
			Expect(p[0].Target).To(Equal(len(p) - 1))
			Expect(p[depth*2-2].Target).To(Equal(depth*2 + 1))
			expectPaired(p)
		}
	})

	It("should pair brackets of random balanced sources and stay deterministic", func() {
		gen := progen.MakeBalancedGen(7, 12, 256)
		for i := 0; i < 200; i++ {
			src := gen()
			p, err := compiler.Compile(src)
			Expect(err).NotTo(HaveOccurred())
			expectPaired(p)

			again, err := compiler.Compile(src)
			Expect(err).NotTo(HaveOccurred())
			Expect(again.Equal(p)).To(BeTrue())
		}
	})

	It("should reject a balanced source with an extra close bracket", func() {
		gen := progen.MakeBalancedGen(11, 8, 128)
		for i := 0; i < 50; i++ {
			src := gen() + "\n]"
			_, err := compiler.Compile(src)
			Expect(err).To(MatchError(compiler.ErrUnmatchedClose))
		}
	})
})
