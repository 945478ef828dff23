package node

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLeaf(t *testing.T) {
	Convey("Given a new leaf", t, func() {
		leaf := NewLeaf[int]([]byte("hello"), 123)

		Convey("It should report its type, key and value", func() {
			So(leaf.Type(), ShouldEqual, TypeLeaf)
			So(leaf.Key(), ShouldResemble, []byte("hello"))
			So(leaf.Value(), ShouldEqual, 123)
			So(leaf.Full(), ShouldBeTrue)
			So(leaf.NumChildren(), ShouldEqual, 0)
		})

		Convey("It should copy its key so the caller's backing array isn't retained", func() {
			key := []byte("hello")
			l := NewLeaf[int](key, 1)
			key[0] = 'x'
			So(l.Key(), ShouldResemble, []byte("hello"))
		})

		Convey("Matches should compare against the stored key exactly", func() {
			So(leaf.Matches([]byte("hello")), ShouldBeTrue)
			So(leaf.Matches([]byte("help")), ShouldBeFalse)
			So(leaf.Matches([]byte("hell")), ShouldBeFalse)
			So(leaf.Matches([]byte("helloo")), ShouldBeFalse)
		})

		Convey("SetValue should replace the stored value", func() {
			leaf.SetValue(456)
			So(leaf.Value(), ShouldEqual, 456)
		})

		Convey("EmbeddedValue is always absent on a leaf", func() {
			_, ok := leaf.EmbeddedValue()
			So(ok, ShouldBeFalse)
		})

		Convey("Operations reserved for inner nodes panic", func() {
			So(func() { leaf.SetEmbeddedValue(1) }, ShouldPanic)
			So(func() { leaf.ClearEmbeddedValue() }, ShouldPanic)
			So(func() { leaf.FindChild('a') }, ShouldPanic)
			So(func() { leaf.RemoveChild('a') }, ShouldPanic)
			So(func() { leaf.Grow() }, ShouldPanic)
			So(func() { leaf.Shrink() }, ShouldPanic)
		})
	})
}
