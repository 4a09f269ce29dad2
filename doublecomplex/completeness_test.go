package doublecomplex_test

import (
	"errors"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/katalvlaran/homalg/doublecomplex"
)

func mustGet(dc *standalone, ps ...[2]int) {
	for _, p := range ps {
		_, err := dc.Get(p[0], p[1])
		convey.So(err, convey.ShouldBeNil)
	}
}

func TestCheckComplete_SingleEntry(t *testing.T) {
	convey.Convey("a single non-zero entry at the origin", t, func() {
		convey.Convey("with no computable neighbours is complete", func() {
			dc, err := newStandalone(newSupport(map[[2]int]int{{0, 0}: 2}))
			convey.So(err, convey.ShouldBeNil)
			mustGet(dc, [2]int{0, 0})

			done, err := dc.IsComplete()
			convey.So(err, convey.ShouldBeNil)
			convey.So(done, convey.ShouldBeTrue)
			convey.So(dc.Verdict(), convey.ShouldEqual, doublecomplex.Complete)
		})

		convey.Convey("with one computable, uncached neighbour is not complete", func() {
			dc, err := newStandalone(newSupport(map[[2]int]int{{0, 0}: 2, {0, 1}: 1}))
			convey.So(err, convey.ShouldBeNil)
			mustGet(dc, [2]int{0, 0})

			done, err := dc.IsComplete()
			convey.So(err, convey.ShouldBeNil)
			convey.So(done, convey.ShouldBeFalse)
			convey.So(dc.Verdict(), convey.ShouldEqual, doublecomplex.Incomplete)

			convey.Convey("and becomes complete once that neighbour is cached", func() {
				mustGet(dc, [2]int{0, 1})
				done, err := dc.IsComplete()
				convey.So(err, convey.ShouldBeNil)
				convey.So(done, convey.ShouldBeTrue)
			})
		})
	})
}

func TestCheckComplete_NeedsWitness(t *testing.T) {
	convey.Convey("an empty cache is never complete", t, func() {
		dc, err := newStandalone(newSupport(map[[2]int]int{{0, 0}: 1}))
		convey.So(err, convey.ShouldBeNil)

		done, err := dc.IsComplete()
		convey.So(err, convey.ShouldBeNil)
		convey.So(done, convey.ShouldBeFalse)
		convey.So(dc.Productions(), convey.ShouldEqual, uint64(0))
	})

	convey.Convey("cached zero entries need no enclosure", t, func() {
		dc, err := newStandalone(newSupport(map[[2]int]int{{0, 0}: 0, {1, 0}: 3}))
		convey.So(err, convey.ShouldBeNil)
		mustGet(dc, [2]int{0, 0})

		done, err := dc.IsComplete()
		convey.So(err, convey.ShouldBeNil)
		convey.So(done, convey.ShouldBeTrue)
		convey.So(dc.HasIndex(1, 0), convey.ShouldBeFalse)
	})
}

func TestCheckComplete_DisjointIslands(t *testing.T) {
	convey.Convey("closed islands report complete even with unexplored regions elsewhere", t, func() {
		s := newSupport(map[[2]int]int{
			{0, 0}: 1, {1, 0}: 1, // island A
			{5, 5}: 2, // island B
			{10, 10}: 4, // never requested
		})
		dc, err := newStandalone(s)
		convey.So(err, convey.ShouldBeNil)
		mustGet(dc, [2]int{0, 0}, [2]int{1, 0}, [2]int{5, 5})

		done, err := dc.IsComplete()
		convey.So(err, convey.ShouldBeNil)
		convey.So(done, convey.ShouldBeTrue)
		convey.So(dc.HasIndex(10, 10), convey.ShouldBeFalse)

		islands := doublecomplex.Islands[dcxC, dcxM, dcxM](dc)
		convey.So(islands, convey.ShouldResemble, [][][2]int{
			{{0, 0}, {1, 0}},
			{{5, 5}},
		})
	})
}

func TestCheckComplete_OneWayCache(t *testing.T) {
	convey.Convey("a complete verdict is never recomputed", t, func() {
		s := newSupport(map[[2]int]int{{0, 0}: 1, {20, 20}: 1, {21, 20}: 1})
		dc, err := newStandalone(s)
		convey.So(err, convey.ShouldBeNil)
		mustGet(dc, [2]int{0, 0})

		done, err := dc.IsComplete()
		convey.So(err, convey.ShouldBeNil)
		convey.So(done, convey.ShouldBeTrue)

		// (20,20) now has an open neighbour, but the verdict is memoized.
		mustGet(dc, [2]int{20, 20})
		done, err = dc.IsComplete()
		convey.So(err, convey.ShouldBeNil)
		convey.So(done, convey.ShouldBeTrue)

		convey.Convey("while a fresh oracle run without memo sees the open neighbour", func() {
			fresh, err := doublecomplex.CheckComplete[dcxC, dcxM, dcxM](dc, nil)
			convey.So(err, convey.ShouldBeNil)
			convey.So(fresh, convey.ShouldBeFalse)
			convey.So(dc.Verdict(), convey.ShouldEqual, doublecomplex.Complete)
		})
	})
}

func TestCheckComplete_FactoryError(t *testing.T) {
	convey.Convey("a failing producibility query propagates", t, func() {
		s := newSupport(map[[2]int]int{{0, 0}: 1})
		s.broken[[2]int{0, 1}] = true
		dc, err := newStandalone(s)
		convey.So(err, convey.ShouldBeNil)
		mustGet(dc, [2]int{0, 0})

		done, err := dc.IsComplete()
		convey.So(errors.Is(err, errBackend), convey.ShouldBeTrue)
		convey.So(done, convey.ShouldBeFalse)
		convey.So(dc.Verdict(), convey.ShouldEqual, doublecomplex.Unknown)
	})
}
