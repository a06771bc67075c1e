package storage_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bishop/internal/bishop"
	"github.com/san-kum/bishop/internal/storage"
)

func walk(data []byte) *bishop.Result {
	art := bishop.NewDefault()
	Expect(art.Input(data)).To(Succeed())
	res, err := art.Result()
	Expect(err).NotTo(HaveOccurred())
	return res
}

var _ = Describe("Store", func() {
	var (
		dir string
		st  *storage.Store
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "bishop-store")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)

		st = storage.New(filepath.Join(dir, "runs"))
		Expect(st.Init()).To(Succeed())
	})

	It("round-trips a walk and its drawing options", func() {
		res := walk([]byte{0xfc, 0x94, 0xb0, 0xc1, 0xe5, 0xb0, 0x98, 0x7c})
		rec := storage.Record{
			Chars:  bishop.DefaultChars,
			Top:    "RSA 2048",
			Input:  "hex",
			Source: "argument",
			Bytes:  8,
		}

		id, err := st.Save(rec, res)
		Expect(err).NotTo(HaveOccurred())
		Expect(id).NotTo(BeEmpty())

		loaded, back, err := st.LoadResult(id)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.ID).To(Equal(id))
		Expect(loaded.Width).To(Equal(17))
		Expect(loaded.Height).To(Equal(9))
		Expect(loaded.Top).To(Equal("RSA 2048"))
		Expect(back.Cells()).To(Equal(res.Cells()))

		opts, err := loaded.Options()
		Expect(err).NotTo(HaveOccurred())
		want, _ := res.Draw(opts)
		got, _ := back.Draw(opts)
		Expect(got).To(Equal(want))
	})

	It("lists stored runs oldest first", func() {
		first, err := st.Save(storage.Record{Chars: bishop.DefaultChars}, walk([]byte("a")))
		Expect(err).NotTo(HaveOccurred())
		second, err := st.Save(storage.Record{Chars: bishop.DefaultChars}, walk([]byte("b")))
		Expect(err).NotTo(HaveOccurred())

		Expect(os.WriteFile(filepath.Join(dir, "runs", "stray.txt"), []byte("x"), 0644)).To(Succeed())
		Expect(os.MkdirAll(filepath.Join(dir, "runs", "broken"), 0755)).To(Succeed())

		runs, err := st.List()
		Expect(err).NotTo(HaveOccurred())
		Expect(runs).To(HaveLen(2))
		Expect(runs[0].ID).To(Equal(first))
		Expect(runs[1].ID).To(Equal(second))
	})

	It("returns an empty list for a missing directory", func() {
		runs, err := storage.New(filepath.Join(dir, "nope")).List()
		Expect(err).NotTo(HaveOccurred())
		Expect(runs).To(BeEmpty())
	})

	It("fails on unknown ids", func() {
		_, err := st.Load("art_0")
		Expect(os.IsNotExist(err)).To(BeTrue())
	})

	It("rejects a corrupted field", func() {
		id, err := st.Save(storage.Record{Chars: bishop.DefaultChars}, walk([]byte("c")))
		Expect(err).NotTo(HaveOccurred())

		path := filepath.Join(dir, "runs", id, "field.csv")
		Expect(os.WriteFile(path, []byte("0,0,0\n"), 0644)).To(Succeed())

		_, _, err = st.LoadResult(id)
		Expect(err).To(HaveOccurred())
	})

	It("rejects fields without an end marker", func() {
		id, err := st.Save(storage.Record{Chars: bishop.DefaultChars}, walk([]byte("d")))
		Expect(err).NotTo(HaveOccurred())

		var row string
		for i := 0; i < 17; i++ {
			if i > 0 {
				row += ","
			}
			row += "0"
		}
		var body string
		for i := 0; i < 9; i++ {
			body += row + "\n"
		}
		Expect(os.WriteFile(filepath.Join(dir, "runs", id, "field.csv"), []byte(body), 0644)).To(Succeed())

		_, _, err = st.LoadResult(id)
		Expect(err).To(MatchError(bishop.ErrCells))
	})
})
