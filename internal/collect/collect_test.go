package collect

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/shirou/gopsutil/v4/host"

	"hwscan/internal/logging"
	"hwscan/internal/mgmt"
	"hwscan/internal/runner"
)

// fakeRunner returns canned results per command; commands without an entry
// fail, matching a missing tool.
type fakeRunner struct {
	outputs map[string]string
}

func (f *fakeRunner) Output(_ context.Context, command string) runner.Result {
	text, ok := f.outputs[command]
	if !ok {
		return runner.Result{}
	}
	return runner.Result{Text: text, OK: true}
}

type fakeQuerier struct {
	snap *mgmt.Snapshot
	err  error
}

func (f *fakeQuerier) Snapshot() (*mgmt.Snapshot, error) {
	return f.snap, f.err
}

func testCollector(platform Platform, run runner.Runner, querier mgmt.Querier) *Collector {
	c := New(platform, run, logging.NewLogger(logging.LevelError), querier)
	c.hostInfo = func(context.Context) (*host.InfoStat, error) {
		return &host.InfoStat{
			Hostname:        "testbox",
			Platform:        "ubuntu",
			PlatformVersion: "22.04",
			KernelArch:      "x86_64",
		}, nil
	}
	c.now = func() time.Time {
		return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	}
	return c
}

func TestCollect_CommonFieldsAlwaysPresent(t *testing.T) {
	for _, platform := range []Platform{PlatformLinux, PlatformDarwin, PlatformWindows, PlatformUnknown} {
		c := testCollector(platform, &fakeRunner{}, &fakeQuerier{err: errors.New("no interface")})
		rec := c.Collect(context.Background())

		for _, key := range []string{"OS", "Hostname", "OS_Version", "Architecture", "Scan_Date"} {
			v, ok := rec.GetString(key)
			if !ok || v == "" {
				t.Errorf("platform %s: common field %s missing or empty", platform, key)
			}
		}
	}
}

func TestCollect_ScanDateFormat(t *testing.T) {
	c := testCollector(PlatformLinux, &fakeRunner{}, &fakeQuerier{})
	rec := c.Collect(context.Background())

	v, _ := rec.GetString("Scan_Date")
	pattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)
	if !pattern.MatchString(v) {
		t.Errorf("Scan_Date %q does not match YYYY-MM-DD HH:MM:SS", v)
	}
	if v != "2025-03-14 09:26:53" {
		t.Errorf("Scan_Date = %q, want 2025-03-14 09:26:53", v)
	}
}

func TestCollect_CommonFieldsFallBackOnHostInfoError(t *testing.T) {
	c := testCollector(PlatformUnknown, &fakeRunner{}, &fakeQuerier{})
	c.hostInfo = func(context.Context) (*host.InfoStat, error) {
		return nil, errors.New("host query failed")
	}
	rec := c.Collect(context.Background())

	for _, key := range []string{"OS", "Hostname", "OS_Version", "Architecture"} {
		v, ok := rec.GetString(key)
		if !ok || v == "" {
			t.Errorf("fallback field %s missing or empty", key)
		}
	}
}

func TestCollect_LinuxAllCommandsFail(t *testing.T) {
	c := testCollector(PlatformLinux, &fakeRunner{}, &fakeQuerier{})
	rec := c.Collect(context.Background())

	for _, key := range []string{"CPU", "Storage", "Serial_Number", "Model", "Manufacturer"} {
		v, _ := rec.GetString(key)
		if v != runner.NotAvailable {
			t.Errorf("%s = %q, want %q", key, v, runner.NotAvailable)
		}
	}
	v, _ := rec.GetString("RAM_GB")
	if v != runner.Unknown {
		t.Errorf("RAM_GB = %q, want %q", v, runner.Unknown)
	}
}

func TestCollect_LinuxRAMConversion(t *testing.T) {
	run := &fakeRunner{outputs: map[string]string{
		`grep MemTotal /proc/meminfo | awk '{print $2}'`: "16777216",
	}}
	c := testCollector(PlatformLinux, run, &fakeQuerier{})
	rec := c.Collect(context.Background())

	v, ok := rec.Get("RAM_GB")
	if !ok {
		t.Fatal("RAM_GB missing")
	}
	if v != 16.0 {
		t.Errorf("RAM_GB = %v, want 16.0", v)
	}
}

func TestCollect_LinuxRAMUnparsable(t *testing.T) {
	run := &fakeRunner{outputs: map[string]string{
		`grep MemTotal /proc/meminfo | awk '{print $2}'`: "not a number",
	}}
	c := testCollector(PlatformLinux, run, &fakeQuerier{})
	rec := c.Collect(context.Background())

	v, _ := rec.GetString("RAM_GB")
	if v != runner.Unknown {
		t.Errorf("RAM_GB = %q, want %q", v, runner.Unknown)
	}
}

func TestCollect_LinuxFieldOrder(t *testing.T) {
	c := testCollector(PlatformLinux, &fakeRunner{}, &fakeQuerier{})
	rec := c.Collect(context.Background())

	want := []string{"OS", "Hostname", "OS_Version", "Architecture", "Scan_Date",
		"CPU", "RAM_GB", "Storage", "Serial_Number", "Model", "Manufacturer"}
	keys := rec.Keys()
	if len(keys) != len(want) {
		t.Fatalf("Expected %d keys, got %d: %v", len(want), len(keys), keys)
	}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("Key %d = %q, want %q", i, keys[i], k)
		}
	}
}

func TestCollect_DarwinRAMConversion(t *testing.T) {
	run := &fakeRunner{outputs: map[string]string{
		`sysctl hw.memsize | awk '{print $2}'`: "17179869184",
	}}
	c := testCollector(PlatformDarwin, run, &fakeQuerier{})
	rec := c.Collect(context.Background())

	v, ok := rec.Get("RAM_GB")
	if !ok {
		t.Fatal("RAM_GB missing")
	}
	if v != 16.0 {
		t.Errorf("RAM_GB = %v, want 16.0", v)
	}
}

func TestCollect_DarwinCPUFact(t *testing.T) {
	run := &fakeRunner{outputs: map[string]string{
		"sysctl -n machdep.cpu.brand_string": "Apple M2 Pro",
	}}
	c := testCollector(PlatformDarwin, run, &fakeQuerier{})
	rec := c.Collect(context.Background())

	v, _ := rec.GetString("CPU")
	if v != "Apple M2 Pro" {
		t.Errorf("CPU = %q, want 'Apple M2 Pro'", v)
	}
}

func TestCollect_WindowsStructured(t *testing.T) {
	querier := &fakeQuerier{snap: &mgmt.Snapshot{
		Manufacturer:     "LENOVO",
		Model:            "21F8002TGE",
		SerialNumber:     "PF4ABCDE",
		CPUName:          "AMD Ryzen 7 PRO 7840U",
		TotalMemoryBytes: 17179869184,
		Disks: []mgmt.Disk{
			{Model: "Samsung SSD 990 PRO", SizeBytes: 1099511627776},
			{Model: "WDC WD20EZRZ", SizeBytes: 2199023255552},
		},
	}}
	c := testCollector(PlatformWindows, &fakeRunner{}, querier)
	rec := c.Collect(context.Background())

	if v, _ := rec.GetString("Manufacturer"); v != "LENOVO" {
		t.Errorf("Manufacturer = %q", v)
	}
	if v, _ := rec.Get("RAM_GB"); v != 16.0 {
		t.Errorf("RAM_GB = %v, want 16.0", v)
	}
	want := "Samsung SSD 990 PRO (1024 GB), WDC WD20EZRZ (2048 GB)"
	if v, _ := rec.GetString("Storage"); v != want {
		t.Errorf("Storage = %q, want %q", v, want)
	}
}

func TestCollect_WindowsFallback(t *testing.T) {
	run := &fakeRunner{outputs: map[string]string{
		"wmic bios get serialnumber": "SerialNumber\nPF4ABCDE",
	}}
	c := testCollector(PlatformWindows, run, &fakeQuerier{err: errors.New("wmi unavailable")})
	rec := c.Collect(context.Background())

	// Raw text-table output is accepted as the value, header included.
	if v, _ := rec.GetString("Serial_Number"); v != "SerialNumber\nPF4ABCDE" {
		t.Errorf("Serial_Number = %q", v)
	}
	// The fallback path performs no numeric conversion.
	if v, _ := rec.GetString("RAM_GB"); v != runner.NotAvailable {
		t.Errorf("RAM_GB = %q, want %q", v, runner.NotAvailable)
	}
	// The fallback table has no Manufacturer query.
	if _, ok := rec.Get("Manufacturer"); ok {
		t.Error("Manufacturer should not be set on the fallback path")
	}
}

func TestCollect_UnknownPlatformCommonOnly(t *testing.T) {
	c := testCollector(PlatformUnknown, &fakeRunner{}, &fakeQuerier{})
	rec := c.Collect(context.Background())

	if rec.Len() != 5 {
		t.Errorf("Expected 5 common fields only, got %d: %v", rec.Len(), rec.Keys())
	}
}
