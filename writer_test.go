package sinetable_test

import (
	"bytes"
	"io/ioutil"

	"github.com/bsm/sinetable"
	"github.com/golang/snappy"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Writer", func() {
	var buf *bytes.Buffer
	var subject *sinetable.Writer

	BeforeEach(func() {
		buf = new(bytes.Buffer)
		subject = sinetable.NewWriter(buf, nil)
	})

	AfterEach(func() {
		_ = subject.Close()
	})

	It("should write empty", func() {
		Expect(subject.Close()).To(Succeed())
		Expect(buf.Len()).To(Equal(0))
	})

	It("should prevent use after close", func() {
		Expect(subject.Append(1)).To(Succeed())
		Expect(subject.Close()).To(Succeed())
		Expect(subject.Append(2)).To(MatchError(`sinetable: is closed`))
		Expect(subject.Close()).To(MatchError(`sinetable: is closed`))
		Expect(buf.String()).To(Equal("@00000000 0001\n"))
	})

	It("should write records", func() {
		for _, v := range seq(10) {
			Expect(subject.Append(v)).To(Succeed())
		}
		Expect(subject.Len()).To(Equal(10))
		Expect(subject.Close()).To(Succeed())
		Expect(buf.String()).To(Equal("" +
			"@00000000 0000 0003 0006 0009 000C 000F 0012 0015\n" +
			"@00000008 0018 001B\n"))
	})

	It("should support custom layouts", func() {
		subject = sinetable.NewWriter(buf, &sinetable.WriterOptions{Width: 2, RecordSize: 4})
		for _, v := range seq(8) {
			Expect(subject.Append(v)).To(Succeed())
		}
		Expect(subject.Close()).To(Succeed())
		Expect(buf.String()).To(Equal("" +
			"@00000000 00 03 06 09\n" +
			"@00000004 0C 0F 12 15\n"))
	})

	It("should not truncate wide values", func() {
		subject = sinetable.NewWriter(buf, &sinetable.WriterOptions{Width: 2})
		Expect(subject.Append(0x12345)).To(Succeed())
		Expect(subject.Append(-1)).To(Succeed())
		Expect(subject.Close()).To(Succeed())
		Expect(buf.String()).To(Equal("@00000000 12345 FFFFFFFFFFFFFFFF\n"))
	})

	It("should write (snappy-compressed)", func() {
		vals := mustGenerate(nil).Deltas
		plain, err := seedRecords(vals, nil)
		Expect(err).NotTo(HaveOccurred())

		subject = sinetable.NewWriter(buf, &sinetable.WriterOptions{Compression: sinetable.SnappyCompression})
		for _, v := range vals {
			Expect(subject.Append(v)).To(Succeed())
		}
		Expect(subject.Close()).To(Succeed())
		Expect(buf.String()).To(HavePrefix("\xff\x06\x00\x00sNaPpY"))
		Expect(buf.Len()).To(BeNumerically("<", plain.Len()))

		data, err := ioutil.ReadAll(snappy.NewReader(buf))
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(Equal(plain.Bytes()))
	})
})
