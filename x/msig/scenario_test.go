package msig

import (
	"testing"

	"github.com/iov-one/ledger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTwoApproverScenario(t *testing.T) {
	Convey("Given wallets X and Y and 100 issued to X", t, func() {
		f := newFixture(t, map[string]uint64{"x": 100, "y": 0})
		msg := transferMsg("x", "y", 40, 1, "a", "b")
		accept := acceptMsg(t, msg)

		Convey("A transfer to Y approved by A and B locks 40", func() {
			res, err := f.deliver(f.transfer, "x", msg)
			So(err, ShouldBeNil)
			So(res.Effect.Outcome, ShouldEqual, ledger.StillPending)

			avail, locked := f.balance(t, "x")
			So(avail, ShouldEqual, 60)
			So(locked, ShouldEqual, 40)

			Convey("Acceptance by A keeps the funds locked", func() {
				res, err := f.deliver(f.accept, "a", accept)
				So(err, ShouldBeNil)
				So(res.Effect.Outcome, ShouldEqual, ledger.StillPending)

				avail, locked := f.balance(t, "x")
				So(avail, ShouldEqual, 60)
				So(locked, ShouldEqual, 40)

				Convey("Acceptance by B settles the transfer", func() {
					res, err := f.deliver(f.accept, "b", accept)
					So(err, ShouldBeNil)
					So(res.Effect.Outcome, ShouldEqual, ledger.Settled)

					avail, locked := f.balance(t, "x")
					So(avail, ShouldEqual, 60)
					So(locked, ShouldEqual, 0)
					avail, locked = f.balance(t, "y")
					So(avail, ShouldEqual, 40)
					So(locked, ShouldEqual, 0)

					settled, err := f.registry.IsSettled(f.db, accept.TxHash)
					So(err, ShouldBeNil)
					So(settled, ShouldBeTrue)

					x, err := f.control.Get(f.db, ident("x"))
					So(err, ShouldBeNil)
					So(x.PendingTxs, ShouldBeEmpty)
					So(x.HistoryLen, ShouldEqual, 3)
					y, err := f.control.Get(f.db, ident("y"))
					So(err, ShouldBeNil)
					So(y.HistoryLen, ShouldEqual, 1)
				})
			})
		})

		Convey("Nothing moves without a transfer", func() {
			_, err := f.deliver(f.accept, "a", accept)
			So(err, ShouldNotBeNil)

			avail, _ := f.balance(t, "y")
			So(avail, ShouldEqual, 0)
		})
	})
}
