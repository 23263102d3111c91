package listener_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/simopts/internal/listener"
	"github.com/san-kum/simopts/internal/options"
)

var _ = Describe("Registry", func() {
	var (
		opts    *options.Options
		reg     *listener.Registry
		changes []listener.Change
	)

	BeforeEach(func() {
		opts = options.New()
		reg = listener.NewRegistry(opts, listener.NewValidator(newTestResolver()))
		changes = nil
		reg.Subscribe(func(c listener.Change) { changes = append(changes, c) })
	})

	Describe("Add", func() {
		It("appends to the end of the options list", func() {
			Expect(reg.Add("A")).To(BeTrue())
			Expect(reg.Add("B")).To(BeTrue())
			Expect(opts.Listeners()).To(Equal([]string{"A", "B"}))
			Expect(changes).To(Equal([]listener.Change{{From: 0, To: 1}, {From: 0, To: 2}}))
		})

		It("ignores blank input", func() {
			Expect(reg.Add("")).To(BeFalse())
			Expect(reg.Add("   ")).To(BeFalse())
			Expect(reg.Add("\t\n")).To(BeFalse())
			Expect(reg.Size()).To(Equal(0))
			Expect(changes).To(BeEmpty())
		})

		It("permits duplicates", func() {
			reg.Add("A")
			reg.Add("A")
			Expect(reg.Size()).To(Equal(2))
		})
	})

	Describe("RemoveAt", func() {
		BeforeEach(func() {
			reg.Add("A")
			reg.Add("B")
			reg.Add("C")
			changes = nil
		})

		It("removes several indices high to low", func() {
			Expect(reg.RemoveAt(0, 2)).To(Succeed())
			Expect(opts.Listeners()).To(Equal([]string{"B"}))
			Expect(changes).To(Equal([]listener.Change{{From: 0, To: 1}}))
		})

		It("accepts indices in any order with duplicates", func() {
			Expect(reg.RemoveAt(2, 0, 2)).To(Succeed())
			Expect(opts.Listeners()).To(Equal([]string{"B"}))
		})

		It("changes nothing when an index is out of range", func() {
			Expect(reg.RemoveAt(0, 3)).To(MatchError(listener.ErrIndexOutOfRange))
			Expect(reg.RemoveAt(-1)).To(MatchError(listener.ErrIndexOutOfRange))
			Expect(opts.Listeners()).To(Equal([]string{"A", "B", "C"}))
			Expect(changes).To(BeEmpty())
		})

		It("treats an empty index list as a no-op", func() {
			rev := reg.Revision()
			Expect(reg.RemoveAt()).To(Succeed())
			Expect(opts.Listeners()).To(Equal([]string{"A", "B", "C"}))
			Expect(reg.Revision()).To(Equal(rev))
			Expect(changes).To(BeEmpty())
		})

		It("keeps the order of the survivors", func() {
			reg.Add("D")
			reg.Add("E")
			Expect(reg.RemoveAt(1, 3)).To(Succeed())
			Expect(opts.Listeners()).To(Equal([]string{"A", "C", "E"}))
		})
	})

	Describe("ElementAt", func() {
		It("returns absent outside the list", func() {
			reg.Add("A")
			id, ok := reg.ElementAt(0)
			Expect(ok).To(BeTrue())
			Expect(id).To(Equal("A"))

			_, ok = reg.ElementAt(1)
			Expect(ok).To(BeFalse())
			_, ok = reg.ElementAt(-1)
			Expect(ok).To(BeFalse())
		})
	})

	Describe("Status", func() {
		It("validates on every call", func() {
			reg.Add(goodID)
			reg.Add("does.not.Exist")

			v, ok := reg.Status(0)
			Expect(ok).To(BeTrue())
			Expect(v.OK()).To(BeTrue())

			v, ok = reg.Status(1)
			Expect(ok).To(BeTrue())
			Expect(v.OK()).To(BeFalse())

			_, ok = reg.Status(2)
			Expect(ok).To(BeFalse())
		})

		It("does not memoise verdicts", func() {
			count := 0
			counting := countingResolver{inner: newTestResolver(), count: &count}
			r := listener.NewRegistry(opts, listener.NewValidator(counting))
			r.Add(goodID)

			r.Status(0)
			r.Status(0)
			Expect(count).To(Equal(2))
		})
	})

	It("tracks size as adds minus removals", func() {
		for _, id := range []string{"a", "", "b", "c", "  ", "d"} {
			reg.Add(id)
		}
		Expect(reg.Size()).To(Equal(4))
		Expect(reg.RemoveAt(1, 2)).To(Succeed())
		Expect(reg.Size()).To(Equal(2))
		Expect(opts.Listeners()).To(Equal([]string{"a", "d"}))
	})

	It("follows list replacements made on the options", func() {
		before := reg.Revision()
		opts.SetListeners([]string{"x", "y"})
		Expect(reg.Revision()).To(BeNumerically(">", before))
		Expect(changes).To(Equal([]listener.Change{{From: 0, To: 2}}))
	})

	Describe("batch validation", func() {
		It("applies results for the current contents", func() {
			reg.Add(goodID)
			reg.Add("does.not.Exist")
			reg.Add(failingID)

			snap := reg.Snapshot()
			verdicts, err := listener.ValidateSnapshot(context.Background(), listener.NewValidator(newTestResolver()), snap, 2)
			Expect(err).NotTo(HaveOccurred())

			var oks []bool
			applied := reg.Apply(snap, verdicts, func(i int, id string, v listener.Verdict) {
				Expect(id).To(Equal(snap.IDs[i]))
				oks = append(oks, v.OK())
			})
			Expect(applied).To(BeTrue())
			Expect(oks).To(Equal([]bool{true, false, false}))
		})

		It("drops results for a since-changed list", func() {
			reg.Add(goodID)
			snap := reg.Snapshot()
			verdicts, err := listener.ValidateSnapshot(context.Background(), listener.NewValidator(newTestResolver()), snap, 0)
			Expect(err).NotTo(HaveOccurred())

			Expect(reg.RemoveAt(0)).To(Succeed())
			called := false
			Expect(reg.Apply(snap, verdicts, func(int, string, listener.Verdict) { called = true })).To(BeFalse())
			Expect(called).To(BeFalse())
		})

		It("keeps results when an empty removal happened meanwhile", func() {
			reg.Add(goodID)
			snap := reg.Snapshot()
			verdicts, err := listener.ValidateSnapshot(context.Background(), listener.NewValidator(newTestResolver()), snap, 1)
			Expect(err).NotTo(HaveOccurred())

			Expect(reg.RemoveAt()).To(Succeed())
			Expect(reg.Apply(snap, verdicts, func(int, string, listener.Verdict) {})).To(BeTrue())
		})

		It("drops results after dispose", func() {
			reg.Add(goodID)
			snap := reg.Snapshot()
			verdicts, _ := listener.ValidateSnapshot(context.Background(), listener.NewValidator(newTestResolver()), snap, 1)

			reg.Dispose()
			Expect(reg.Disposed()).To(BeTrue())
			Expect(reg.Apply(snap, verdicts, func(int, string, listener.Verdict) {})).To(BeFalse())
		})

		It("stops on a cancelled context", func() {
			reg.Add(goodID)
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := listener.ValidateSnapshot(ctx, listener.NewValidator(newTestResolver()), reg.Snapshot(), 1)
			Expect(err).To(MatchError(context.Canceled))
		})

		It("handles an empty snapshot", func() {
			verdicts, err := listener.ValidateSnapshot(context.Background(), listener.NewValidator(newTestResolver()), reg.Snapshot(), 4)
			Expect(err).NotTo(HaveOccurred())
			Expect(verdicts).To(BeEmpty())
		})
	})
})

type countingResolver struct {
	inner interface{ Resolve(string) (any, error) }
	count *int
}

func (c countingResolver) Resolve(id string) (any, error) {
	*c.count++
	return c.inner.Resolve(id)
}
