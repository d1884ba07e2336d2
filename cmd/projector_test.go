package cmd

import (
	"bytes"
	"encoding/json"
	e "github.com/datastax/csv-projector/errors"
	"github.com/datastax/csv-projector/internal/testutil"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"io/ioutil"
	"os"
	"path/filepath"
)

type document struct {
	Data []map[string]interface{} `json:"data"`
}

var _ = Describe("NewCommand()", func() {
	var server *testutil.CSVServer
	var stdout *bytes.Buffer
	var tempDir string

	execute := func(args ...string) error {
		cmd := NewCommand(stdout)
		cmd.SetArgs(append(args, "--log-level", "error"))
		cmd.SetErr(ioutil.Discard)
		return cmd.Execute()
	}

	decode := func() document {
		var doc document
		Expect(json.Unmarshal(stdout.Bytes(), &doc)).To(Succeed())
		return doc
	}

	BeforeEach(func() {
		server = testutil.NewCSVServer(testutil.CampaignsCSV)
		stdout = &bytes.Buffer{}

		var err error
		tempDir, err = ioutil.TempDir("", "csv-projector")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		server.Close()
		Expect(os.RemoveAll(tempDir)).To(Succeed())
	})

	Describe("--fields", func() {
		It("Should print the requested fields of every row", func() {
			Expect(execute("--fields", "date,clicks", "--file_link", server.Link())).To(Succeed())

			doc := decode()
			Expect(doc.Data).To(HaveLen(3))
			for _, row := range doc.Data {
				Expect(row).To(HaveLen(2))
				Expect(row).To(HaveKey("date"))
				Expect(row).To(HaveKey("clicks"))
			}
			Expect(doc.Data[0]).To(HaveKeyWithValue("clicks", "120"))
			Expect(server.Hits()).To(Equal(int64(1)))
		})

		It("Should print every field when empty", func() {
			Expect(execute("--fields", "", "--file_link", server.Link())).To(Succeed())

			doc := decode()
			Expect(doc.Data).To(HaveLen(3))
			for _, row := range doc.Data {
				Expect(row).To(HaveLen(4))
				for _, column := range testutil.CampaignsColumns {
					Expect(row).To(HaveKey(column))
				}
			}
		})

		It("Should indent the document with four spaces", func() {
			Expect(execute("-f", "date", "-l", server.Link())).To(Succeed())
			Expect(stdout.String()).To(HavePrefix("{\n    \"data\": [\n        {\n            \"date\": \"2023-07-01\"\n        },"))
		})

		It("Should fail with every invalid field and print nothing", func() {
			err := execute("--fields", "date,nonexistent,other", "--file_link", server.Link())

			Expect(err).To(HaveOccurred())
			Expect(err).To(BeAssignableToTypeOf(&e.InvalidFieldsError{}))
			Expect(err.(*e.InvalidFieldsError).Fields).To(Equal([]string{"nonexistent", "other"}))
			Expect(stdout.Len()).To(BeZero())
		})

		It("Should report empty names next to other entries as invalid", func() {
			for _, fields := range []string{",", "date,"} {
				stdout.Reset()
				err := execute("--fields", fields, "--file_link", server.Link())

				Expect(err).To(BeAssignableToTypeOf(&e.InvalidFieldsError{}), fields)
				Expect(err.(*e.InvalidFieldsError).Fields).To(Equal([]string{""}))
				Expect(stdout.Len()).To(BeZero())
			}
		})

		It("Should be required", func() {
			err := execute("--file_link", server.Link())

			Expect(err).To(MatchError(ContainSubstring("fields are required")))
			Expect(server.Hits()).To(BeZero())
		})

		It("Should reject positional arguments", func() {
			Expect(execute("--fields", "date", "extra")).NotTo(Succeed())
			Expect(stdout.Len()).To(BeZero())
		})
	})

	Describe("--file_link", func() {
		It("Should read a local file", func() {
			path := filepath.Join(tempDir, "campaigns.csv")
			Expect(ioutil.WriteFile(path, []byte(testutil.CampaignsCSV), 0644)).To(Succeed())

			Expect(execute("--fields", "campaign", "--file_link", path)).To(Succeed())

			doc := decode()
			Expect(doc.Data).To(HaveLen(3))
			Expect(doc.Data[2]).To(HaveKeyWithValue("campaign", "back_to_school"))
		})

		It("Should read a local file with a colon in its name", func() {
			path := filepath.Join(tempDir, "sales:q1.csv")
			Expect(ioutil.WriteFile(path, []byte(testutil.CampaignsCSV), 0644)).To(Succeed())

			Expect(execute("--fields", "date", "--file_link", path)).To(Succeed())
			Expect(decode().Data).To(HaveLen(3))
		})

		It("Should follow redirects", func() {
			Expect(execute("--fields", "date", "--file_link", server.RedirectLink())).To(Succeed())

			Expect(decode().Data).To(HaveLen(3))
			Expect(server.Hits()).To(Equal(int64(2)))
		})

		It("Should fail as unavailable for an unsupported scheme", func() {
			err := execute("--fields", "date", "--file_link", "ftp://example.com/campaigns.csv")

			Expect(err).To(BeAssignableToTypeOf(&e.SourceUnavailableError{}))
			Expect(err.(*e.SourceUnavailableError).Location).To(Equal("ftp://example.com/campaigns.csv"))
			Expect(stdout.Len()).To(BeZero())
		})

		It("Should fail when the file does not exist", func() {
			path := filepath.Join(tempDir, "missing.csv")
			err := execute("--fields", "date", "--file_link", path)

			Expect(err).To(BeAssignableToTypeOf(&e.SourceUnavailableError{}))
			Expect(err.(*e.SourceUnavailableError).Location).To(Equal(path))
			Expect(stdout.Len()).To(BeZero())
		})

		It("Should fail when the server does not have the file", func() {
			err := execute("--fields", "date", "--file_link", server.URL+"/missing.csv")

			Expect(err).To(BeAssignableToTypeOf(&e.SourceUnavailableError{}))
			Expect(stdout.Len()).To(BeZero())
		})

		It("Should be read from the environment", func() {
			Expect(os.Setenv("CSV_PROJECTOR_FILE_LINK", server.Link())).To(Succeed())
			defer os.Unsetenv("CSV_PROJECTOR_FILE_LINK")

			Expect(execute("--fields", "cost")).To(Succeed())
			Expect(decode().Data).To(HaveLen(3))
			Expect(server.Hits()).To(Equal(int64(1)))
		})
	})

	Describe("--config", func() {
		It("Should read settings from the config file", func() {
			path := filepath.Join(tempDir, "projector.yaml")
			content := "fields: [date, cost]\nfile_link: " + server.Link() + "\ninfer-types: true\nindent: 0\n"
			Expect(ioutil.WriteFile(path, []byte(content), 0644)).To(Succeed())

			Expect(execute("--config", path)).To(Succeed())
			Expect(stdout.String()).To(Equal(
				`{"data":[{"date":"2023-07-01","cost":35.5},{"date":"2023-07-02","cost":28.1},{"date":"2023-07-03","cost":41.25}]}`))
		})

		It("Should fail when the config file cannot be read", func() {
			err := execute("--config", filepath.Join(tempDir, "missing.yaml"), "--fields", "date")

			Expect(err).To(MatchError(ContainSubstring("unable to read config file")))
			Expect(server.Hits()).To(BeZero())
		})
	})

	Describe("output options", func() {
		It("Should rename keys", func() {
			Expect(execute("--fields", "date,clicks", "--file_link", server.Link(), "--key-naming", "camel")).To(Succeed())

			doc := decode()
			Expect(doc.Data[0]).To(HaveKeyWithValue("Date", "2023-07-01"))
			Expect(doc.Data[0]).To(HaveKeyWithValue("Clicks", "120"))
		})

		It("Should reject an unknown naming", func() {
			err := execute("--fields", "date", "--file_link", server.Link(), "--key-naming", "kebab")

			Expect(err).To(BeAssignableToTypeOf(&e.RequestError{}))
			Expect(err).To(MatchError("key-naming must be one of [none snake camel lower-camel]"))
			Expect(server.Hits()).To(BeZero())
		})
	})
})
