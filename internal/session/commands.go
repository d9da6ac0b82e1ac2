package session

import (
	"fmt"

	"github.com/mmr-tortoise/numlist/internal/numlist"
)

// newCommandRegistry builds the full command table. The order here is the
// order of the help listing.
func newCommandRegistry() *registry {
	r := newRegistry()
	mustRegister(r,
		command{Name: "exit", Desc: "exit numlist", Run: cmdExit},
		command{Name: "ls", Desc: "print list", Run: cmdList},
		command{Name: "help", Desc: "print this help", Run: cmdHelp},
		command{Name: "im", Usage: "im <path>", Desc: "import file with a number on each line", TakesArg: true, Run: cmdImport},

		command{Name: "o", Desc: "print ordered list", NeedsValues: true, Run: cmdSortAsc},
		command{Name: "ob", Desc: "print list ordered from largest to smallest", NeedsValues: true, Run: cmdSortDesc},
		command{Name: "rm", Usage: "rm <value>", Desc: "remove number from list", NeedsValues: true, TakesArg: true, Run: cmdRemove},
		command{Name: "clear", Desc: "remove all numbers from the list", NeedsValues: true, Run: cmdClear},
		command{Name: "len", Desc: "print number of values in list", NeedsValues: true, Run: cmdLen},

		command{Name: "a", Desc: "add all numbers in list", NeedsValues: true, Run: cmdSum},
		command{Name: "m", Desc: "multiply all numbers in list", NeedsValues: true, Run: cmdProduct},
		command{Name: "ma", Desc: "print mean", NeedsValues: true, Run: cmdMean},
		command{Name: "med", Desc: "print median", NeedsValues: true, Run: cmdMedian},
		command{Name: "sd", Desc: "print population standard deviation", NeedsValues: true, Run: cmdStdDev},
		command{Name: "ra", Desc: "print range", NeedsValues: true, Run: cmdRange},
		command{Name: "s", Desc: "print smallest number in list", NeedsValues: true, Run: cmdMin},
		command{Name: "l", Desc: "print largest number in list", NeedsValues: true, Run: cmdMax},

		command{Name: "ex", Usage: "ex <path>", Desc: "export list, one number per line", NeedsValues: true, TakesArg: true, Run: cmdExport},
	)
	return r
}

func cmdExit(*Session, []string) bool { return true }

func cmdList(s *Session, _ []string) bool {
	if s.list.IsEmpty() {
		s.println("List empty")
		return false
	}
	s.println(numlist.FormatList(s.list.Values()))
	return false
}

func cmdHelp(s *Session, _ []string) bool {
	s.println(s.helpText())
	return false
}

func cmdImport(s *Session, args []string) bool {
	if len(args) == 0 {
		s.println("Invalid path")
		return false
	}
	s.ImportFile(args[0])
	return false
}

func cmdSortAsc(s *Session, _ []string) bool {
	s.println(numlist.FormatList(numlist.SortedAscending(s.list.Values())))
	return false
}

func cmdSortDesc(s *Session, _ []string) bool {
	s.println(numlist.FormatList(numlist.SortedDescending(s.list.Values())))
	return false
}

func cmdRemove(s *Session, args []string) bool {
	if len(args) == 0 {
		s.println(`Enter a number after rm e.g. "rm 300"`)
		return false
	}
	v, err := numlist.ParseValue(args[0])
	if err != nil {
		s.println("Not a valid number")
		return false
	}
	if !s.list.Remove(v) {
		s.printf("Not in list: %s\n", numlist.FormatValue(v))
		return false
	}
	s.printf("Removed: %s\n", numlist.FormatValue(v))
	return false
}

func cmdClear(s *Session, _ []string) bool {
	s.list.Clear()
	return false
}

func cmdLen(s *Session, _ []string) bool {
	s.printf("List length: %d\n", s.list.Len())
	return false
}

// aggregate adapts a numlist aggregate into a command printing "label: value".
func aggregate(label string, fn func([]float64) float64) cmdFunc {
	return func(s *Session, _ []string) bool {
		s.printf("%s: %s\n", label, numlist.FormatValue(fn(s.list.Values())))
		return false
	}
}

var (
	cmdSum     = aggregate("Total", numlist.Sum)
	cmdProduct = aggregate("Product", numlist.Product)
	cmdMean    = aggregate("Mean", numlist.Mean)
	cmdMedian  = aggregate("Median", numlist.Median)
	cmdStdDev  = aggregate("Standard deviation", numlist.StdDev)
	cmdRange   = aggregate("Range", numlist.Range)
	cmdMin     = aggregate("Smallest number", numlist.Min)
	cmdMax     = aggregate("Largest number", numlist.Max)
)

func cmdExport(s *Session, args []string) bool {
	if len(args) == 0 {
		s.println("Invalid path")
		return false
	}
	res, err := s.exporter.Export(args[0], s.list.Values())
	if err != nil {
		s.eprintf("Error exporting file: %v\n", err)
		return false
	}
	if !res.Written {
		s.println("Export canceled.")
		return false
	}
	s.printf("Values written to file '%s'.\n", res.Path)
	return false
}

func (s *Session) helpText() string {
	text := "\nTo add a number to the list just type it.\n\nCommands to run on the list:\n\n"
	for _, name := range s.reg.names() {
		cmd, _ := s.reg.resolve(name)
		usage := cmd.Usage
		if usage == "" {
			usage = cmd.Name
		}
		text += fmt.Sprintf("    %-12s %s\n", usage, cmd.Desc)
	}
	text += "\nCommands other than exit, ls, help and im need a non-empty list.\n" +
		"Quote paths containing spaces, e.g. im \"my numbers.txt\"\n"
	return text
}
