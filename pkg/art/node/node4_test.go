package node

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNode4(t *testing.T) {
	Convey("Given an empty Node4", t, func() {
		n := NewNode4[int]([]byte("pre"))

		Convey("It reports its type and capacity", func() {
			So(n.Type(), ShouldEqual, TypeNode4)
			So(n.Prefix(), ShouldResemble, []byte("pre"))
			So(n.NumChildren(), ShouldEqual, 0)
			So(n.Full(), ShouldBeFalse)
		})

		Convey("Adding children keeps keys sorted regardless of insertion order", func() {
			n.AddChild('c', NewLeaf[int]([]byte("c"), 3))
			n.AddChild('a', NewLeaf[int]([]byte("a"), 1))
			n.AddChild('b', NewLeaf[int]([]byte("b"), 2))

			So(n.NumChildren(), ShouldEqual, 3)
			So(n.keys[0], ShouldEqual, byte('a'))
			So(n.keys[1], ShouldEqual, byte('b'))
			So(n.keys[2], ShouldEqual, byte('c'))
		})

		Convey("FindChild locates an installed child and reports absence otherwise", func() {
			n.AddChild('a', NewLeaf[int]([]byte("a"), 1))

			slot := n.FindChild('a')
			So(slot, ShouldNotBeNil)
			So((*slot).(*Leaf[int]).Value(), ShouldEqual, 1)

			So(n.FindChild('z'), ShouldBeNil)
		})

		Convey("RemoveChild compacts the remaining entries", func() {
			n.AddChild('a', NewLeaf[int]([]byte("a"), 1))
			n.AddChild('b', NewLeaf[int]([]byte("b"), 2))
			n.AddChild('c', NewLeaf[int]([]byte("c"), 3))

			n.RemoveChild('b')
			So(n.NumChildren(), ShouldEqual, 2)
			So(n.FindChild('b'), ShouldBeNil)
			So(n.FindChild('a'), ShouldNotBeNil)
			So(n.FindChild('c'), ShouldNotBeNil)
		})

		Convey("Full reports true once 4 children are installed", func() {
			for i, b := range []byte("abcd") {
				n.AddChild(b, NewLeaf[int]([]byte{b}, i))
			}
			So(n.Full(), ShouldBeTrue)
		})

		Convey("Grow produces an equivalent Node16", func() {
			for i, b := range []byte("abcd") {
				n.AddChild(b, NewLeaf[int]([]byte{b}, i))
			}
			grown := n.Grow()
			n16, ok := grown.(*Node16[int])
			So(ok, ShouldBeTrue)
			So(n16.Prefix(), ShouldResemble, []byte("pre"))
			So(n16.NumChildren(), ShouldEqual, 4)
			for i, b := range []byte("abcd") {
				slot := n16.FindChild(b)
				So(slot, ShouldNotBeNil)
				So((*slot).(*Leaf[int]).Value(), ShouldEqual, i)
			}
		})

		Convey("Shrink never applies: Node4 is already the smallest variant", func() {
			_, ok := n.Shrink()
			So(ok, ShouldBeFalse)
		})

		Convey("Embedded value round-trips through set/clear", func() {
			_, had := n.EmbeddedValue()
			So(had, ShouldBeFalse)

			old, existed := n.SetEmbeddedValue(42)
			So(existed, ShouldBeFalse)
			So(old, ShouldEqual, 0)

			v, has := n.EmbeddedValue()
			So(has, ShouldBeTrue)
			So(v, ShouldEqual, 42)

			cleared, existed := n.ClearEmbeddedValue()
			So(existed, ShouldBeTrue)
			So(cleared, ShouldEqual, 42)
			_, has = n.EmbeddedValue()
			So(has, ShouldBeFalse)
		})
	})
}
