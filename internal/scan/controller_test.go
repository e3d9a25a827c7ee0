package scan

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"

	"github.com/Makepad-fr/brickscan/internal/config"
	"github.com/Makepad-fr/brickscan/internal/model"
)

var _ = Describe("Controller", func() {
	var (
		mockCtrl  *gomock.Controller
		presenter *MockPresenter
		settings  config.Settings
		gate      HostGate
		c         *Controller
		shown     []model.Entry
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		presenter = NewMockPresenter(mockCtrl)
		settings = config.DefaultSettings()
		gate = HostGate{Expected: "scanner.local", Actual: "scanner.local"}
		shown = nil
	})

	JustBeforeEach(func() {
		c = New(settings, gate, presenter)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	recordShown := func() {
		presenter.EXPECT().ShowEntry(gomock.Any()).
			Do(func(e model.Entry) { shown = append(shown, e) }).
			AnyTimes()
	}

	Context("when a scan is submitted", func() {
		It("should format, store, show and beep", func() {
			recordShown()
			presenter.EXPECT().Beep()

			c.HandleScan("  A*B*C*D \n")

			Expect(shown).To(HaveLen(1))
			Expect(shown[0].Code).To(Equal(model.Code("8#C")))
			Expect(shown[0].Placeholder).To(BeFalse())
			Expect(c.Entries()).To(HaveLen(1))
			Expect(c.Entries()[0].ID).To(Equal(shown[0].ID))
		})

		It("should use the sentinel for short barcodes", func() {
			recordShown()
			presenter.EXPECT().Beep()

			c.HandleScan("A*B")

			Expect(shown[0].Code).To(Equal(model.Code("8#N/A")))
		})

		It("should ignore empty input", func() {
			c.HandleScan("   \t ")

			Expect(c.Entries()).To(BeEmpty())
		})

		It("should keep duplicates", func() {
			recordShown()
			presenter.EXPECT().Beep().Times(2)

			c.HandleScan("A*B*C*D")
			c.HandleScan("A*B*C*D")

			Expect(c.Entries()).To(HaveLen(2))
		})

		Context("with beep disabled", func() {
			BeforeEach(func() {
				settings.SetBeepEnabled(false)
			})

			It("should not beep", func() {
				recordShown()
				presenter.EXPECT().Beep().Times(0)

				c.HandleScan("A*B*C*D")

				Expect(shown).To(HaveLen(1))
			})
		})
	})

	Context("when the activation check fails", func() {
		BeforeEach(func() {
			gate.Actual = "somewhere.else"
		})

		It("should show one empty placeholder and record nothing", func() {
			recordShown()
			presenter.EXPECT().Beep()

			c.HandleScan("8#A*B*C*D")

			Expect(shown).To(HaveLen(1))
			Expect(shown[0].Placeholder).To(BeTrue())
			Expect(shown[0].Code).To(BeEmpty())
			Expect(c.Entries()).To(BeEmpty())
			Expect(c.History()).To(BeEmpty())
		})

		It("should drop the placeholder on acknowledgment without copying", func() {
			recordShown()
			presenter.EXPECT().Beep()
			c.HandleScan("A*B*C*D")

			presenter.EXPECT().RemoveEntry(shown[0].ID)
			Expect(c.Acknowledge(shown[0].ID)).To(BeTrue())
			Expect(c.Acknowledge(shown[0].ID)).To(BeFalse())
			Expect(c.History()).To(BeEmpty())
		})
	})

	Context("when a brick is acknowledged", func() {
		var id model.EntryID

		JustBeforeEach(func() {
			recordShown()
			presenter.EXPECT().Beep().AnyTimes()
			c.HandleScan("A*B*C*D")
			id = shown[0].ID
		})

		It("should copy, notify, remove and record it once", func() {
			gomock.InOrder(
				presenter.EXPECT().Copy("8#C"),
				presenter.EXPECT().Notify(CopiedMessage),
				presenter.EXPECT().RemoveEntry(id),
				presenter.EXPECT().RenderHistory([]model.Code{"8#C"}),
			)

			Expect(c.Acknowledge(id)).To(BeTrue())
			Expect(c.Acknowledge(id)).To(BeFalse())

			Expect(c.Entries()).To(BeEmpty())
			Expect(c.History()).To(Equal([]model.Code{"8#C"}))
		})

		It("should accept acknowledgment through Dispatch", func() {
			presenter.EXPECT().Copy(gomock.Any())
			presenter.EXPECT().Notify(gomock.Any())
			presenter.EXPECT().RemoveEntry(id)
			presenter.EXPECT().RenderHistory(gomock.Any())

			Expect(c.Dispatch(EntryAcknowledged{ID: id})).To(Succeed())
			Expect(c.Dispatch(EntryAcknowledged{ID: id})).To(Succeed())
			Expect(c.History()).To(HaveLen(1))
		})
	})

	Context("when many bricks are acknowledged", func() {
		It("should keep the five newest in history", func() {
			recordShown()
			presenter.EXPECT().Beep().AnyTimes()
			presenter.EXPECT().Copy(gomock.Any()).AnyTimes()
			presenter.EXPECT().Notify(gomock.Any()).AnyTimes()
			presenter.EXPECT().RemoveEntry(gomock.Any()).AnyTimes()
			presenter.EXPECT().RenderHistory(gomock.Any()).AnyTimes()

			for i := 1; i <= 6; i++ {
				c.HandleScan(fmt.Sprintf("x*y*c%d*z", i))
			}
			for _, e := range shown {
				c.Acknowledge(e.ID)
			}

			Expect(c.History()).To(Equal([]model.Code{"8#c6", "8#c5", "8#c4", "8#c3", "8#c2"}))
		})
	})

	Context("when a history brick is activated", func() {
		It("should copy without changing history", func() {
			recordShown()
			presenter.EXPECT().Beep().AnyTimes()
			presenter.EXPECT().RemoveEntry(gomock.Any()).AnyTimes()
			presenter.EXPECT().RenderHistory(gomock.Any()).AnyTimes()
			presenter.EXPECT().Notify(CopiedMessage).AnyTimes()
			presenter.EXPECT().Copy("8#C").Times(2)

			c.HandleScan("A*B*C*D")
			c.Acknowledge(shown[0].ID)

			Expect(c.Dispatch(HistoryCopied{Index: 0})).To(Succeed())
			Expect(c.CopyHistory(3)).To(BeFalse())
			Expect(c.History()).To(Equal([]model.Code{"8#C"}))
		})
	})

	Context("when settings change", func() {
		It("should apply a new prefix to later scans", func() {
			recordShown()
			presenter.EXPECT().Beep()

			Expect(c.Dispatch(SettingChanged{Setting: SettingPrefix, Value: "LOT-"})).To(Succeed())
			c.HandleScan("A*B*C*D")

			Expect(shown[0].Code).To(Equal(model.Code("LOT-C")))
		})

		It("should ignore out-of-range code lengths", func() {
			Expect(c.Dispatch(SettingChanged{Setting: SettingCodeLength, Value: "12"})).To(Succeed())
			Expect(c.Dispatch(SettingChanged{Setting: SettingCodeLength, Value: "0"})).To(Succeed())
			Expect(c.Dispatch(SettingChanged{Setting: SettingCodeLength, Value: "51"})).To(Succeed())
			Expect(c.Dispatch(SettingChanged{Setting: SettingCodeLength, Value: "abc"})).To(Succeed())

			Expect(c.Settings().CodeLength).To(Equal(12))
		})

		It("should toggle the beep", func() {
			Expect(c.Dispatch(SettingChanged{Setting: SettingBeep, Value: "false"})).To(Succeed())
			Expect(c.Settings().BeepEnabled).To(BeFalse())

			Expect(c.Dispatch(SettingChanged{Setting: SettingBeep, Value: "maybe"})).To(Succeed())
			Expect(c.Settings().BeepEnabled).To(BeFalse())
		})

		It("should reject unknown settings", func() {
			err := c.Dispatch(SettingChanged{Setting: "volume", Value: "11"})

			Expect(err).To(MatchError(ErrUnknownSetting))
		})
	})
})

var _ = Describe("HostGate", func() {
	It("should allow when no host is expected", func() {
		Expect(HostGate{Actual: "anything"}.Allow()).To(BeTrue())
	})

	It("should compare hosts case-insensitively", func() {
		Expect(HostGate{Expected: "Scanner.Local", Actual: "scanner.local"}.Allow()).To(BeTrue())
		Expect(HostGate{Expected: "scanner.local", Actual: "other"}.Allow()).To(BeFalse())
		Expect(HostGate{Expected: "scanner.local"}.Allow()).To(BeFalse())
	})
})
