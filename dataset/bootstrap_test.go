package dataset_test

import (
	"encoding/csv"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"taskforce/dataset"
)

var _ = Describe("EnsureSample", func() {
	var path string

	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), "sample_air_quality.csv")
	})

	readAll := func() [][]string {
		f, err := os.Open(path)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()
		records, err := csv.NewReader(f).ReadAll()
		Expect(err).NotTo(HaveOccurred())
		return records
	}

	It("writes the sample table with Year, PM2.5, and CO2 columns", func() {
		Expect(dataset.EnsureSample(path)).To(Succeed())

		records := readAll()
		Expect(records[0]).To(Equal([]string{"Year", "PM2.5", "CO2"}))
		Expect(records).To(HaveLen(4)) // header + three years
		Expect(records[1]).To(Equal([]string{"2021", "55", "400"}))
		Expect(records[3]).To(Equal([]string{"2023", "42", "390"}))
	})

	It("is idempotent and never overwrites an existing file", func() {
		custom := "Year,PM2.5\n2020,60\n"
		Expect(os.WriteFile(path, []byte(custom), 0644)).To(Succeed())

		Expect(dataset.EnsureSample(path)).To(Succeed())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal(custom))
	})

	It("creates intermediate directories", func() {
		nested := filepath.Join(GinkgoT().TempDir(), "data", "samples", "air.csv")
		Expect(dataset.EnsureSample(nested)).To(Succeed())
		_, err := os.Stat(nested)
		Expect(err).NotTo(HaveOccurred())
	})
})
