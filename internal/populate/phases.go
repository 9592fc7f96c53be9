package populate

import (
	"fmt"
	"math/rand/v2"
	"path"
	"path/filepath"

	"github.com/seedbed-io/seedbed/internal/catalog"
	"github.com/seedbed-io/seedbed/internal/partition"
	"github.com/seedbed-io/seedbed/internal/synth"
)

// payload renders document content for a destination. PDF destinations get
// real PDF structure; a render failure falls back to the plain text body so
// the destination is still produced.
func payload(category, title, ext string, overrides map[string]string) []byte {
	body := synth.Document(category, overrides)
	if ext == ".pdf" {
		if b, err := synth.PDF(title, body); err == nil {
			return b
		}
	}
	return []byte(body)
}

func pick(list []string) string {
	return list[rand.IntN(len(list))]
}

// documentParts builds one partition per user covering the user's document
// subtree. Destinations are index-derived per directory, so partitions stay
// disjoint by construction.
func (p *Populator) documentParts() []partition.Partition {
	c := p.opts.Counts
	return partition.ByEntity(p.opts.Users, func(user string) partition.Partition {
		part := partition.Partition{Name: "documents/" + user}
		base := filepath.Join("Users", user)

		n := c.Documents.Draw(nil)
		for i := 0; i < n; i++ {
			category := pick(catalog.DocumentCategories)
			ext := pick(catalog.DocumentExtensions)
			name := fmt.Sprintf("%s_%03d%s", category, i+1, ext)
			part.Tasks = append(part.Tasks, partition.Task{
				Dest:    filepath.Join(base, "Documents", name),
				Payload: payload(category, name, ext, nil),
			})
		}

		n = c.Work.Draw(nil)
		for i := 0; i < n; i++ {
			ext := pick(catalog.WorkExtensions)
			name := fmt.Sprintf("report_%03d%s", i+1, ext)
			part.Tasks = append(part.Tasks, partition.Task{
				Dest:    filepath.Join(base, "Documents", "Work", name),
				Payload: payload("reports", name, ext, map[string]string{"user": user}),
			})
		}

		n = c.Personal.Draw(nil)
		for i := 0; i < n; i++ {
			ext := pick(catalog.PersonalExtensions)
			name := fmt.Sprintf("note_%03d%s", i+1, ext)
			part.Tasks = append(part.Tasks, partition.Task{
				Dest:    filepath.Join(base, "Documents", "Personal", name),
				Payload: payload(pick(catalog.DocumentCategories), name, ext, map[string]string{"user": user}),
			})
		}

		n = c.Desktop.Draw(nil)
		for i := 0; i < n; i++ {
			ext := pick(catalog.DesktopExtensions)
			name := fmt.Sprintf("desktop_file_%02d%s", i+1, ext)
			part.Tasks = append(part.Tasks, partition.Task{
				Dest:    filepath.Join(base, "Desktop", name),
				Payload: payload(pick(catalog.DocumentCategories), name, ext, nil),
			})
		}

		return part
	})
}

// imageParts builds one download partition per image user. Destination keys
// use forward slashes because they address the target bucket, not the local
// filesystem directly.
func (p *Populator) imageParts() []partition.Partition {
	users := p.opts.Users
	if len(users) > p.opts.ImageUsers {
		users = users[:p.opts.ImageUsers]
	}
	c := p.opts.Counts
	urls := p.opts.ImageURLs

	return partition.ByEntity(users, func(user string) partition.Partition {
		part := partition.Partition{Name: "images/" + user}
		base := path.Join("Users", user, "Pictures")

		add := func(dir, prefix string, n int) {
			for i := 0; i < n; i++ {
				part.Downloads = append(part.Downloads, partition.Download{
					URL:  pick(urls),
					Dest: path.Join(dir, fmt.Sprintf("%s_%03d.jpg", prefix, i+1)),
				})
			}
		}
		add(base, "photo", c.Pictures.Draw(nil))
		add(path.Join(base, "Vacation"), "vacation", c.Vacation.Draw(nil))
		add(path.Join(base, "Family"), "family", c.Family.Draw(nil))

		return part
	})
}

// departmentParts builds one partition per department share.
func (p *Populator) departmentParts() []partition.Partition {
	c := p.opts.Counts
	return partition.ByEntity(p.opts.Departments, func(dept string) partition.Partition {
		part := partition.Partition{Name: "departments/" + dept}
		base := filepath.Join("Shared", dept)
		overrides := map[string]string{"dept": dept}

		n := c.Reports.Draw(nil)
		for i := 0; i < n; i++ {
			ext := pick(catalog.ReportExtensions)
			name := fmt.Sprintf("report_%03d%s", i+1, ext)
			part.Tasks = append(part.Tasks, partition.Task{
				Dest:    filepath.Join(base, "Reports", name),
				Payload: payload("reports", name, ext, overrides),
			})
		}

		n = c.Meetings.Draw(nil)
		for i := 0; i < n; i++ {
			name := fmt.Sprintf("meeting_%03d.docx", i+1)
			part.Tasks = append(part.Tasks, partition.Task{
				Dest:    filepath.Join(base, "Meetings", name),
				Payload: payload("meeting_notes", name, ".docx", overrides),
			})
		}

		n = c.ProjectFiles.Draw(nil)
		for i := 0; i < n; i++ {
			ext := pick(catalog.ProjectExtensions)
			name := fmt.Sprintf("project_doc_%03d%s", i+1, ext)
			part.Tasks = append(part.Tasks, partition.Task{
				Dest:    filepath.Join(base, "Projects", name),
				Payload: payload(pick(catalog.DocumentCategories), name, ext, overrides),
			})
		}

		return part
	})
}

// systemParts builds the system-artifact partitions: one per log type plus
// fixed-size slices over the temp and cache totals.
func (p *Populator) systemParts() []partition.Partition {
	c := p.opts.Counts

	parts := partition.ByEntity(p.opts.LogTypes, func(logType string) partition.Partition {
		part := partition.Partition{Name: "logs/" + logType}
		files := c.LogFiles.Draw(nil)
		for i := 0; i < files; i++ {
			part.Tasks = append(part.Tasks, partition.Task{
				Dest:    filepath.Join("Windows", "Logs", fmt.Sprintf("%s_%02d.log", logType, i+1)),
				Payload: []byte(synth.LogFile(logType, c.LogEntries.Draw(nil))),
			})
		}
		return part
	})

	parts = append(parts, partition.BySlice("temp", c.TempFiles.Draw(nil), p.opts.BatchSize,
		func(name string, start, end int) partition.Partition {
			part := partition.Partition{Name: name}
			for i := start; i < end; i++ {
				part.Tasks = append(part.Tasks, partition.Task{
					Dest:    filepath.Join("Temp", fmt.Sprintf("tmp_%05d.tmp", 10000+i)),
					Payload: []byte(synth.TempFile(i)),
				})
			}
			return part
		})...)

	parts = append(parts, partition.BySlice("cache", c.CacheFiles.Draw(nil), p.opts.BatchSize,
		func(name string, start, end int) partition.Partition {
			part := partition.Partition{Name: name}
			for i := start; i < end; i++ {
				part.Tasks = append(part.Tasks, partition.Task{
					Dest:    filepath.Join("Windows", "Temp", "Cache", fmt.Sprintf("cache_%06d.dat", i)),
					Payload: []byte(synth.CacheFile(i)),
				})
			}
			return part
		})...)

	return parts
}

// archiveParts builds the backup-archive partitions in fixed-size slices.
func (p *Populator) archiveParts() []partition.Partition {
	c := p.opts.Counts
	return partition.BySlice("archives", c.Archives.Draw(nil), p.opts.BatchSize,
		func(name string, start, end int) partition.Partition {
			part := partition.Partition{Name: name}
			for i := start; i < end; i++ {
				body, err := synth.Archive(c.ArchiveMembers.Draw(nil))
				if err != nil {
					body = []byte(fmt.Sprintf("backup archive %d", i+1))
				}
				part.Tasks = append(part.Tasks, partition.Task{
					Dest:    filepath.Join("Backup", fmt.Sprintf("backup_%03d.zip", i+1)),
					Payload: body,
				})
			}
			return part
		})
}

// deletedParts builds one partition per deleted-file category. Each
// category's files live in their own transient subtree under Temp so the
// executor can remove the whole set in one call.
func (p *Populator) deletedParts() []partition.Partition {
	return partition.ByEntity(p.deletedCategories(), func(category string) partition.Partition {
		part := partition.Partition{Name: "deleted/" + category}
		dir := filepath.Join("Temp", ".deleted_"+category)
		for _, filename := range p.opts.DeletedSets[category] {
			part.Tasks = append(part.Tasks, partition.Task{
				Dest:    filepath.Join(dir, filename),
				Payload: []byte(synth.DeletedFile(category, filename)),
			})
		}
		return part
	})
}
