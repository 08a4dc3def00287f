package main

import (
	"os"

	"github.com/alecthomas/kingpin"
)

var (
	app   = kingpin.New("gffutils", "A command-line application for working with GFF and GTF annotation files.")
	debug = app.Flag("debug", "Enable debug mode.").Bool()

	countApp  = app.Command("count", "count annotation records.")
	countFile = countApp.Arg("gff_file", "GFF or GTF file.").Required().String()

	filterApp    = app.Command("filter", "filter records by feature type.")
	filterIn     = filterApp.Arg("gff_file", "GFF or GTF file.").Required().String()
	filterOut    = filterApp.Arg("out_file", "out file.").Required().String()
	filterIgnore = filterApp.Flag("ignore", "feature types to skip.").Strings()
	filterOnly   = filterApp.Flag("only", "feature types to keep.").Strings()

	loadApp  = app.Command("load", "load annotation records into a feature db.")
	loadFile = loadApp.Arg("gff_file", "GFF or GTF file.").Required().String()
	loadOut  = loadApp.Arg("feature_db_path", "feature db path").Required().String()

	reportApp    = app.Command("report", "report feature db statistics.")
	reportDb     = reportApp.Arg("feature_db_path", "feature db path").Required().String()
	reportPrefix = reportApp.Flag("prefix", "prefix").Required().String()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	switch command {
	case countApp.FullCommand():
		countcmd := cmdCount{
			file: *countFile,
		}
		countcmd.run()
	case filterApp.FullCommand():
		filtercmd := cmdFilter{
			in:     *filterIn,
			out:    *filterOut,
			ignore: *filterIgnore,
			only:   *filterOnly,
		}
		filtercmd.run()
		break
	case loadApp.FullCommand():
		loadcmd := cmdLoad{
			file:   *loadFile,
			dbfile: *loadOut,
		}
		loadcmd.run()
		break
	case reportApp.FullCommand():
		reportcmd := cmdReport{
			dbfile: *reportDb,
			prefix: *reportPrefix,
		}
		reportcmd.run()
		break
	}
}
