package listener_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/simopts/internal/listener"
	"github.com/san-kum/simopts/internal/plugin"
)

type panickingResolver struct{}

func (panickingResolver) Resolve(string) (any, error) { panic("resolver bug") }

var _ = Describe("Validator", func() {
	var v *listener.Validator

	BeforeEach(func() {
		v = listener.NewValidator(newTestResolver())
	})

	It("accepts a resolvable listener", func() {
		verdict := v.Validate(goodID)
		Expect(verdict.OK()).To(BeTrue())
		Expect(verdict.Reason()).To(BeEmpty())
		Expect(verdict.String()).To(Equal("Listener instantiated successfully."))
	})

	It("fails unknown identifiers without panicking", func() {
		var verdict listener.Verdict
		Expect(func() { verdict = v.Validate("does.not.Exist") }).NotTo(Panic())
		Expect(verdict.OK()).To(BeFalse())
		Expect(verdict.Err).To(MatchError(plugin.ErrUnknown))
		Expect(verdict.Reason()).To(ContainSubstring("does.not.Exist"))
	})

	It("fails types that are not listeners", func() {
		verdict := v.Validate(notID)
		Expect(verdict.Err).To(MatchError(listener.ErrNotListener))
		Expect(verdict.Reason()).To(ContainSubstring("notAListener"))
	})

	It("keeps the constructor error text", func() {
		verdict := v.Validate(failingID)
		Expect(verdict.Err).To(MatchError(plugin.ErrConstruct))
		Expect(verdict.Reason()).To(ContainSubstring("missing output directory"))
		Expect(verdict.String()).To(HavePrefix("Unable to instantiate listener: "))
	})

	It("converts constructor panics", func() {
		verdict := v.Validate("panicky")
		Expect(verdict.Reason()).To(ContainSubstring("constructor exploded"))
	})

	It("converts resolver panics", func() {
		pv := listener.NewValidator(panickingResolver{})
		var verdict listener.Verdict
		Expect(func() { verdict = pv.Validate("anything") }).NotTo(Panic())
		Expect(verdict.Reason()).To(ContainSubstring("resolver bug"))
	})
})

var _ = Describe("Activate", func() {
	It("builds listeners in order", func() {
		r := newTestResolver()
		ls, err := listener.Activate(r, []string{goodID, goodID})
		Expect(err).NotTo(HaveOccurred())
		Expect(ls).To(HaveLen(2))
	})

	It("reports every bad identifier", func() {
		r := newTestResolver()
		ls, err := listener.Activate(r, []string{goodID, "does.not.Exist", notID})
		Expect(ls).To(BeNil())
		Expect(err).To(MatchError(plugin.ErrUnknown))
		Expect(err).To(MatchError(listener.ErrNotListener))
		Expect(err.Error()).To(ContainSubstring("listener 1"))
		Expect(err.Error()).To(ContainSubstring("listener 2"))
	})
})
